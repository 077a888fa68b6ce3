package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysics stores the engine every factory function creates bodies in.
func CreatePhysics(ecs *ecs.ECS, engine physics.Engine) *donburi.Entry {
	e := archetypes.Physics.Spawn(ecs)
	components.Physics.SetValue(e, components.PhysicsData{Engine: engine})
	return e
}

// Engine returns the engine registered with CreatePhysics.
func Engine(ecs *ecs.ECS) physics.Engine {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry).Engine
}

// EntityOf maps a physics handle back to the entity that owns it.
func EntityOf(ecs *ecs.ECS, h physics.Handle) (*donburi.Entry, bool) {
	engine := Engine(ecs)
	if engine == nil {
		return nil, false
	}
	ent, ok := engine.Data(h).(donburi.Entity)
	if !ok || !ecs.World.Valid(ent) {
		return nil, false
	}
	return ecs.World.Entry(ent), true
}

// Destroy removes an entity and its collider, if any.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Body) {
		if engine := Engine(ecs); engine != nil {
			engine.Remove(components.Body.Get(e).Handle)
		}
	}
	ecs.World.Remove(e.Entity())
}
