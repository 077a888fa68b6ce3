// Package physics is the boundary between game logic and the rigid-body
// simulation. Game code only talks to Engine; the Chipmunk-backed Space is
// the production implementation.
package physics

import "github.com/automoto/slingshot/gamemath"

// Handle identifies a body owned by an Engine. The zero Handle is never issued.
type Handle uint64

// NoHandle is the zero Handle.
const NoHandle Handle = 0

// BodyMode selects how the engine moves a body.
type BodyMode int

const (
	Static BodyMode = iota
	Kinematic
	Dynamic
)

func (m BodyMode) String() string {
	switch m {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// BodyDef describes a body to create.
type BodyDef struct {
	Mode       BodyMode
	Collider   Collider
	Position   gamemath.Vec
	Rotation   float64 // radians, counter-clockwise
	Density    float64 // mass per unit area, ignored for static bodies
	Friction   float64
	Elasticity float64
	// Data is returned by Engine.Data. Game code stores the owning entity here.
	Data any
}

// Engine is the contract the game consumes from the physics simulation.
// Methods taking a Handle that no longer exists are no-ops returning zero values.
type Engine interface {
	Create(def BodyDef) Handle
	Remove(h Handle)
	Exists(h Handle) bool
	Data(h Handle) any

	Mode(h Handle) BodyMode
	SetMode(h Handle, mode BodyMode)

	Position(h Handle) gamemath.Vec
	SetPosition(h Handle, p gamemath.Vec)
	Rotation(h Handle) float64

	Velocity(h Handle) gamemath.Vec
	SetVelocity(h Handle, v gamemath.Vec)
	// ImpactVelocity is the velocity the body carried into the most recent
	// Step, before contacts in that step were solved.
	ImpactVelocity(h Handle) gamemath.Vec

	// Contacts returns the bodies touching h after the most recent Step.
	Contacts(h Handle) []Handle
	// QueryPoint returns every body whose collider contains p, in Handle order.
	QueryPoint(p gamemath.Vec) []Handle

	Step(dt float64)
	Gravity() gamemath.Vec
}

// ImpactSpeed is the magnitude of ImpactVelocity.
func ImpactSpeed(e Engine, h Handle) float64 {
	return e.ImpactVelocity(h).Len()
}
