package components

import (
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Engine physics.Engine
}

var Physics = donburi.NewComponentType[PhysicsData]()
