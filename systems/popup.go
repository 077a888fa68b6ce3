package systems

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePopups advances score popup tweens and removes finished ones.
func UpdatePopups(ecs *ecs.ECS) {
	dt := float32(tickDt(ecs))
	var done []*donburi.Entry
	tags.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		offset, finished := p.Rise.Update(dt)
		p.Offset = float64(offset)
		if cfg.Popup.Rise > 0 {
			p.Alpha = 1 - p.Offset/cfg.Popup.Rise
		}
		if finished {
			p.Done = true
			done = append(done, e)
		}
	})
	for _, e := range done {
		ecs.World.Remove(e.Entity())
	}
}

// DrawPopups renders live score popups above where their piece broke.
func DrawPopups(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Popup) {
		return
	}
	camera := GetOrCreateCamera(ecs)
	face := fonts.Popup.Get()
	tags.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		at := camera.ToScreen(p.Origin.Add(gamemath.V(0, p.Offset)))
		c := cfg.Popup.Color
		c.A = uint8(255 * clamp01(p.Alpha))
		text.Draw(screen, p.Text, face, int(at.X), int(at.Y), color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
