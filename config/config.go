package config

import (
	"image/color"

	"github.com/automoto/slingshot/gamemath"
)

// PhysicsConfig contains the values handed to the physics engine
type PhysicsConfig struct {
	Gravity    gamemath.Vec `yaml:"gravity"`
	Step       float64      `yaml:"step"`       // Fixed sub-step in seconds
	Iterations int          `yaml:"iterations"` // Solver iterations per step
	Friction   float64      `yaml:"friction"`
	Elasticity float64      `yaml:"elasticity"`
}

// LaunchConfig contains drag-to-launch tuning
type LaunchConfig struct {
	PickRadius   float64 `yaml:"pickRadius"`   // Max press distance from the projectile
	ImpulseScale float64 `yaml:"impulseScale"` // Velocity per unit of drag
}

// DestructionConfig contains impact speed thresholds in world units per second
type DestructionConfig struct {
	Steel            float64 `yaml:"steel"`
	Wood             float64 `yaml:"wood"`
	InvisibleSupport float64 `yaml:"invisibleSupport"`
	Target           float64 `yaml:"target"`
}

// RespawnConfig contains projectile lifecycle configuration
type RespawnConfig struct {
	Delay      float64  `yaml:"delay"` // Seconds without an on-launcher projectile
	FlavorText []string `yaml:"flavorText"`
}

// ProjectileConfig contains the bird's physical properties
type ProjectileConfig struct {
	Radius      float64      `yaml:"radius"`
	Density     float64      `yaml:"density"`
	SpawnOffset gamemath.Vec `yaml:"spawnOffset"` // Offset from the anchor
	Sprite      string       `yaml:"sprite"`
}

// PieceConfig contains physical properties shared by structure pieces
type PieceConfig struct {
	WoodDensity   float64 `yaml:"woodDensity"`
	SteelDensity  float64 `yaml:"steelDensity"`
	TargetDensity float64 `yaml:"targetDensity"`
}

// WorldConfig contains fixed world geometry
type WorldConfig struct {
	Anchor       gamemath.Vec `yaml:"anchor"`
	GroundCenter gamemath.Vec `yaml:"groundCenter"`
	GroundSize   gamemath.Vec `yaml:"groundSize"`
	BoundsMin    gamemath.Vec `yaml:"boundsMin"` // Entities leaving these bounds are culled
	BoundsMax    gamemath.Vec `yaml:"boundsMax"`
}

// ScoreConfig contains points awarded per removal
type ScoreConfig struct {
	Wood   int `yaml:"wood"`
	Steel  int `yaml:"steel"`
	Target int `yaml:"target"`
}

// PopupConfig contains score popup animation values
type PopupConfig struct {
	Rise     float64 // pixels
	Duration float64 // seconds
	Color    color.RGBA
}

// UIConfig contains HUD text and colors
type UIConfig struct {
	DefaultPrompt  string
	ClearedBanner  string
	PausedBanner   string
	GroundColor    color.RGBA
	BackdropColor  color.RGBA
	HUDTextColor   color.RGBA
	DragLineColor  color.RGBA
	DebugColors    map[string]color.RGBA
	HUDFontSize    float64
	BannerFontSize float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Zoom   float64 // Screen pixels per world unit
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw collider outlines
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Launch LaunchConfig
var Destruction DestructionConfig
var Respawn RespawnConfig
var Projectile ProjectileConfig
var Piece PieceConfig
var World WorldConfig
var Score ScoreConfig
var Popup PopupConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Grass        = color.RGBA{R: 51, G: 204, B: 51, A: 255}
	Sky          = color.RGBA{R: 135, G: 196, B: 235, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Brown        = color.RGBA{R: 150, G: 100, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1200,
		Height: 800,
		Zoom:   1.0,
	}

	Physics = PhysicsConfig{
		Gravity:    gamemath.V(0, -9.8*100), // pixel-scaled
		Step:       1.0 / 60.0,
		Iterations: 20,
		Friction:   0.7,
		Elasticity: 0.1,
	}

	Launch = LaunchConfig{
		PickRadius:   50.0,
		ImpulseScale: 15.0,
	}

	Destruction = DestructionConfig{
		Steel:            800.0,
		Wood:             600.0,
		InvisibleSupport: 600.0,
		Target:           600.0,
	}

	Respawn = RespawnConfig{
		Delay: 2.0,
		FlavorText: []string{
			"Pull back and let it fly!",
			"The pigs look nervous.",
			"Steel laughs at slow birds.",
			"Wood splinters at 600.",
			"Aim for the supports.",
			"Another bird is ready.",
		},
	}

	Projectile = ProjectileConfig{
		Radius:      29.0, // ~59px sprite width / 2
		Density:     1.0,
		SpawnOffset: gamemath.V(0, 20),
		Sprite:      "bird_red.png",
	}

	Piece = PieceConfig{
		WoodDensity:   0.5,
		SteelDensity:  2.0,
		TargetDensity: 0.8,
	}

	World = WorldConfig{
		Anchor:       gamemath.V(-300, -220),
		GroundCenter: gamemath.V(0, -300),
		GroundSize:   gamemath.V(1000, 50),
		BoundsMin:    gamemath.V(-1500, -900),
		BoundsMax:    gamemath.V(1500, 2000),
	}

	Score = ScoreConfig{
		Wood:   100,
		Steel:  250,
		Target: 5000,
	}

	Popup = PopupConfig{
		Rise:     40,
		Duration: 0.9,
		Color:    White,
	}

	UI = UIConfig{
		DefaultPrompt:  "Drag the bird back and release to launch.",
		ClearedBanner:  "LEVEL CLEARED",
		PausedBanner:   "PAUSED",
		GroundColor:    Grass,
		BackdropColor:  Sky,
		HUDTextColor:   White,
		DragLineColor:  Brown,
		HUDFontSize:    14,
		BannerFontSize: 32,
		DebugColors: map[string]color.RGBA{
			"wood":       Orange,
			"steel":      Grey,
			"invisible":  Cyan,
			"target":     Green,
			"projectile": Red,
			"ground":     Yellow,
		},
	}
}
