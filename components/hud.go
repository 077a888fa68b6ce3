package components

import (
	"github.com/automoto/slingshot/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HudData is the text pushed to the UI label each frame.
type HudData struct {
	Hover  string
	Text   string
	Banner string
}

var Hud = donburi.NewComponentType[HudData]()

// ScoreData accumulates removals for the current level attempt.
type ScoreData struct {
	Pieces   int
	Targets  int
	Points   int
	Launches int
}

var Score = donburi.NewComponentType[ScoreData]()

// PopupData is a floating score label.
type PopupData struct {
	Text   string
	Origin gamemath.Vec
	Rise   *gween.Tween
	Offset float64
	Alpha  float64
	Done   bool
}

var Popup = donburi.NewComponentType[PopupData]()

// SettingsData are player preferences persisted between runs.
type SettingsData struct {
	Overlay   bool
	LastLevel int
}

var Settings = donburi.NewComponentType[SettingsData]()
