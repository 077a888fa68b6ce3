package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePopup spawns a score label that rises from origin and fades out.
func CreatePopup(ecs *ecs.ECS, text string, origin gamemath.Vec) *donburi.Entry {
	popup := archetypes.Popup.Spawn(ecs)
	components.Popup.SetValue(popup, components.PopupData{
		Text:   text,
		Origin: origin,
		Rise:   gween.New(0, float32(cfg.Popup.Rise), float32(cfg.Popup.Duration), ease.OutQuad),
		Alpha:  1,
	})
	return popup
}
