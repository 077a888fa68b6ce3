package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Impulse is the launch velocity for a drag from start to release.
func Impulse(start, release gamemath.Vec) gamemath.Vec {
	return gamemath.LaunchImpulse(start, release, cfg.Launch.ImpulseScale)
}

// UpdateLaunch runs the drag-to-launch state machine on this tick's pointer
// sample. With no projectile every event is ignored.
func UpdateLaunch(ecs *ecs.ECS) {
	drag := GetOrCreateDrag(ecs)
	pointer := GetOrCreatePointer(ecs)

	bird, ok := CurrentProjectile(ecs)
	if !ok {
		drag.Dragging = false
		return
	}
	engine := factory.Engine(ecs)
	proj := components.Projectile.Get(bird)
	h := components.Body.Get(bird).Handle

	if !drag.Dragging {
		if pointer.Pressed && proj.OnLauncher &&
			gamemath.WithinRadius(pointer.World, engine.Position(h), cfg.Launch.PickRadius) {
			drag.Dragging = true
			drag.Start = pointer.World
		}
		return
	}

	if !proj.OnLauncher {
		drag.Dragging = false
		return
	}

	// A button found up without a release edge (focus lost mid-drag) still
	// ends the drag where the pointer is.
	if pointer.Released || !pointer.Held {
		impulse := Impulse(drag.Start, pointer.World)
		engine.SetMode(h, physics.Dynamic)
		engine.SetVelocity(h, impulse)
		proj.OnLauncher = false
		drag.Dragging = false

		score := GetOrCreateScore(ecs)
		score.Launches++
		zap.L().Debug("projectile launched",
			zap.Float64("vx", impulse.X),
			zap.Float64("vy", impulse.Y),
			zap.Float64("speed", impulse.Len()),
			zap.Int("launch", score.Launches),
		)
		return
	}

	engine.SetPosition(h, pointer.World)
}
