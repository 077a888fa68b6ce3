package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionReset
	ActionPause
	ActionStep
	ActionNextLevel
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Button that grabs and releases the projectile
	LaunchButton ebiten.MouseButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		LaunchButton: ebiten.MouseButtonLeft,
		Bindings: map[ActionID]InputBinding{
			ActionReset: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			},
			ActionStep: {
				Keys: []ebiten.Key{ebiten.KeyPeriod},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
			ActionToggleDebug: {
				Keys:         []ebiten.Key{ebiten.KeyF3},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonMiddle},
			},
		},
	}
}
