package systems

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePause handles the pause toggle and single-step requests.
// This system should run AFTER UpdateInput but BEFORE UpdatePhysics.
func UpdatePause(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		TogglePause(ecs)
	}
	if GetAction(input, cfg.ActionStep).JustPressed {
		RequestStep(ecs)
	}
}

// TogglePause freezes or resumes the simulation clock.
func TogglePause(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Paused = !clock.Paused
	clock.StepOnce = false
	zap.L().Debug("clock toggled", zap.Bool("paused", clock.Paused), zap.Int("tick", clock.Tick))
}

// RequestStep advances a paused clock by exactly one sub-step on the next
// physics update. It does nothing while running.
func RequestStep(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	if clock.Paused {
		clock.StepOnce = true
	}
}

// IsPaused reports whether the simulation clock is frozen.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreateClock(ecs).Paused
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) || !fonts.Loaded(fonts.Banner) {
		return
	}

	width := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, width, 48, cfg.BlackOverlay, false)

	face := fonts.Banner.Get()
	bounds := text.BoundString(face, cfg.UI.PausedBanner)
	x := (int(width) - bounds.Dx()) / 2
	text.Draw(screen, cfg.UI.PausedBanner, face, x, 36, cfg.UI.HUDTextColor)
}

// WithPauseCheck wraps a system so it only runs on ticks where the
// simulation clock advanced.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if clock := GetOrCreateClock(e); clock.Dt <= 0 {
			return
		}
		system(e)
	}
}

// tickDt returns the simulated time advanced this tick.
func tickDt(ecs *ecs.ECS) float64 {
	return GetOrCreateClock(ecs).Dt
}
