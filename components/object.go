package components

import (
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its collider in the physics engine.
type BodyData struct {
	Handle physics.Handle
}

var Body = donburi.NewComponentType[BodyData]()

// PlacementData is the pose an entity was spawned with.
type PlacementData struct {
	Position gamemath.Vec
	Rotation float64
}

var Placement = donburi.NewComponentType[PlacementData]()
