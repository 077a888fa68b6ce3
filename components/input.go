package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PointerData is the pointer already normalized to world space, plus the
// launch button edges for this tick.
type PointerData struct {
	World    gamemath.Vec
	Screen   gamemath.Vec
	Pressed  bool // went down this tick
	Held     bool
	Released bool // went up this tick
}

var Pointer = donburi.NewComponentType[PointerData]()
