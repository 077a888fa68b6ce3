package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// AddCoreSystems registers the per-tick simulation in its required order:
// launch, physics step, destruction, cull, respawn, reset, hover, HUD.
// Input sampling systems must be added before it.
func AddCoreSystems(e *ecs.ECS, respawn *RespawnScheduler) {
	e.AddSystem(UpdateLaunch)
	e.AddSystem(UpdatePhysics)
	e.AddSystem(WithPauseCheck(UpdateDestruction))
	e.AddSystem(WithPauseCheck(UpdateCull))
	e.AddSystem(WithPauseCheck(respawn.Update))
	e.AddSystem(UpdateReset)
	e.AddSystem(UpdateHover)
	e.AddSystem(WithPauseCheck(UpdatePopups))
	e.AddSystem(UpdateHud)
}
