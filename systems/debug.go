package systems

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the collider overlay and persists the choice.
func UpdateDebugToggle(ecs *ecs.ECS) {
	if !GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(ecs)
	settings.Overlay = !settings.Overlay
	SaveCurrentSettings(settings)
}

// DrawDebug outlines every collider, invisible supports included.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Overlay {
		return
	}
	engine := factory.Engine(ecs)
	camera := GetOrCreateCamera(ecs)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		c, ok := colliderOf(e)
		if !ok {
			return
		}
		pos, rot := poseOf(engine, e)
		outline := c.Outline(pos, rot)
		clr := debugColor(e)
		for i := range outline {
			a := camera.ToScreen(outline[i])
			b := camera.ToScreen(outline[(i+1)%len(outline)])
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
		}
	})

	// Pick radius around the cursor
	sc := GetOrCreatePointer(ecs).Screen
	r := float32(cfg.Launch.PickRadius * camera.Zoom)
	vector.StrokeCircle(screen, float32(sc.X), float32(sc.Y), r, 1, cfg.White, true)
}

func debugColor(e *donburi.Entry) color.Color {
	key := "ground"
	switch {
	case e.HasComponent(components.Piece):
		key = components.Piece.Get(e).Material.String()
	case e.HasComponent(components.Target):
		key = "target"
	case e.HasComponent(components.Projectile):
		key = "projectile"
	}
	if c, ok := cfg.UI.DebugColors[key]; ok {
		return c
	}
	return cfg.Cyan
}
