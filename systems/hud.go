package systems

import (
	"fmt"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHud composes the label text pushed to the UI this frame.
func UpdateHud(ecs *ecs.ECS) {
	hud := GetOrCreateHud(ecs)
	respawn := GetOrCreateRespawn(ecs)
	score := GetOrCreateScore(ecs)

	name := ""
	if level := GetLevel(ecs); level != nil {
		name = fmt.Sprintf("Level %d: %s", level.Index+1, level.Layout.Name)
	}

	hud.Text = fmt.Sprintf("%s\n%s\n%s | Score %d | Pigs left %d | Birds %d",
		respawn.Flavor, hud.Hover, name, score.Points, TargetsRemaining(ecs), score.Launches)

	hud.Banner = ""
	if GetLevel(ecs) != nil && Cleared(ecs) {
		hud.Banner = cfg.UI.ClearedBanner
	}
}

// DrawBanner renders the level-cleared banner across the screen center.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := GetOrCreateHud(ecs)
	if hud.Banner == "" || !fonts.Loaded(fonts.Banner) {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(h)/2-40, float32(w), 80, cfg.BlackOverlay, false)

	face := fonts.Banner.Get()
	bounds := text.BoundString(face, hud.Banner)
	text.Draw(screen, hud.Banner, face, (w-bounds.Dx())/2, h/2+bounds.Dy()/2, cfg.Yellow)
}
