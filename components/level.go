package components

import (
	"github.com/automoto/slingshot/layout"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// LevelData is the layout currently built into the world.
type LevelData struct {
	Index       int
	Layout      layout.Layout
	Structure   uuid.UUID
	Fingerprint uint64
	Resets      int
}

var Level = donburi.NewComponentType[LevelData]()

// ResetRequestData is raised by the reset button or key and consumed by
// the reset system. Advance moves the level index before rebuilding.
type ResetRequestData struct {
	Pending bool
	Advance int
}

var ResetRequest = donburi.NewComponentType[ResetRequestData]()
