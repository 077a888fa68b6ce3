package systems

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the engine by one fixed sub-step unless the clock
// is paused. A pending single-step request is consumed here.
func UpdatePhysics(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Dt = 0

	if clock.Paused && !clock.StepOnce {
		return
	}
	clock.StepOnce = false

	engine := factory.Engine(ecs)
	if engine == nil {
		return
	}
	engine.Step(cfg.Physics.Step)

	clock.Dt = cfg.Physics.Step
	clock.Tick++
	clock.Elapsed += cfg.Physics.Step
}
