package components

import (
	"github.com/automoto/slingshot/gamemath"
	"github.com/yohamta/donburi"
)

// ProjectileData is the launchable bird. OnLauncher stays true until the
// drag is released.
type ProjectileData struct {
	OnLauncher bool
	Density    float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// DragData is the launch gesture state. Start is the press position in
// world space and is only meaningful while Dragging.
type DragData struct {
	Dragging bool
	Start    gamemath.Vec
}

var Drag = donburi.NewComponentType[DragData]()

// RespawnData drives the projectile respawn countdown.
type RespawnData struct {
	Remaining float64
	Flavor    string
	Spawns    int
}

var Respawn = donburi.NewComponentType[RespawnData]()
