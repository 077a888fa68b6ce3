package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// InspectAt returns the annotation of the first piece containing p, or
// the default prompt. It never mutates the world.
func InspectAt(ecs *ecs.ECS, p gamemath.Vec) string {
	engine := factory.Engine(ecs)
	if engine == nil {
		return cfg.UI.DefaultPrompt
	}
	for _, h := range engine.QueryPoint(p) {
		e, ok := factory.EntityOf(ecs, h)
		if !ok || !e.HasComponent(components.Piece) || !e.HasComponent(components.Annotation) {
			continue
		}
		return components.Annotation.Get(e).Text
	}
	return cfg.UI.DefaultPrompt
}

// UpdateHover stores the description under the pointer for the HUD.
func UpdateHover(ecs *ecs.ECS) {
	pointer := GetOrCreatePointer(ecs)
	GetOrCreateHud(ecs).Hover = InspectAt(ecs, pointer.World)
}
