// Package physicstest provides a scripted physics.Engine for tests. Bodies
// integrate velocity under gravity but never collide on their own: contacts
// are declared with Touch and stay reported until Separate or removal.
package physicstest

import (
	"sort"

	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
)

type body struct {
	def      physics.BodyDef
	mode     physics.BodyMode
	pos      gamemath.Vec
	vel      gamemath.Vec
	impact   gamemath.Vec
	contacts map[physics.Handle]struct{}
}

// Engine is a deterministic physics.Engine double.
type Engine struct {
	gravity gamemath.Vec
	bodies  map[physics.Handle]*body
	next    physics.Handle
	Steps   int
	Created int
	Removed int
}

var _ physics.Engine = (*Engine)(nil)

// New returns an engine with the given gravity.
func New(gravity gamemath.Vec) *Engine {
	return &Engine{
		gravity: gravity,
		bodies:  make(map[physics.Handle]*body),
	}
}

func (e *Engine) Create(def physics.BodyDef) physics.Handle {
	e.next++
	e.Created++
	e.bodies[e.next] = &body{
		def:      def,
		mode:     def.Mode,
		pos:      def.Position,
		contacts: make(map[physics.Handle]struct{}),
	}
	return e.next
}

func (e *Engine) Remove(h physics.Handle) {
	b, ok := e.bodies[h]
	if !ok {
		return
	}
	for other := range b.contacts {
		if ob, ok := e.bodies[other]; ok {
			delete(ob.contacts, h)
		}
	}
	delete(e.bodies, h)
	e.Removed++
}

func (e *Engine) Exists(h physics.Handle) bool {
	_, ok := e.bodies[h]
	return ok
}

func (e *Engine) Data(h physics.Handle) any {
	if b, ok := e.bodies[h]; ok {
		return b.def.Data
	}
	return nil
}

func (e *Engine) Mode(h physics.Handle) physics.BodyMode {
	if b, ok := e.bodies[h]; ok {
		return b.mode
	}
	return physics.Static
}

func (e *Engine) SetMode(h physics.Handle, mode physics.BodyMode) {
	if b, ok := e.bodies[h]; ok {
		b.mode = mode
	}
}

func (e *Engine) Position(h physics.Handle) gamemath.Vec {
	if b, ok := e.bodies[h]; ok {
		return b.pos
	}
	return gamemath.Vec{}
}

func (e *Engine) SetPosition(h physics.Handle, p gamemath.Vec) {
	if b, ok := e.bodies[h]; ok {
		b.pos = p
	}
}

func (e *Engine) Rotation(h physics.Handle) float64 {
	if b, ok := e.bodies[h]; ok {
		return b.def.Rotation
	}
	return 0
}

func (e *Engine) Velocity(h physics.Handle) gamemath.Vec {
	if b, ok := e.bodies[h]; ok {
		return b.vel
	}
	return gamemath.Vec{}
}

func (e *Engine) SetVelocity(h physics.Handle, v gamemath.Vec) {
	if b, ok := e.bodies[h]; ok {
		b.vel = v
	}
}

func (e *Engine) ImpactVelocity(h physics.Handle) gamemath.Vec {
	if b, ok := e.bodies[h]; ok {
		return b.impact
	}
	return gamemath.Vec{}
}

func (e *Engine) Contacts(h physics.Handle) []physics.Handle {
	b, ok := e.bodies[h]
	if !ok {
		return nil
	}
	out := make([]physics.Handle, 0, len(b.contacts))
	for other := range b.contacts {
		out = append(out, other)
	}
	sortHandles(out)
	return out
}

func (e *Engine) QueryPoint(p gamemath.Vec) []physics.Handle {
	var out []physics.Handle
	for h, b := range e.bodies {
		if b.def.Collider.ContainsWorld(b.pos, b.def.Rotation, p) {
			out = append(out, h)
		}
	}
	sortHandles(out)
	return out
}

// Step records impact velocities, then integrates dynamic bodies with
// semi-implicit Euler.
func (e *Engine) Step(dt float64) {
	e.Steps++
	for _, b := range e.bodies {
		b.impact = b.vel
		if b.mode != physics.Dynamic {
			continue
		}
		b.vel = b.vel.Add(e.gravity.Scale(dt))
		b.pos = b.pos.Add(b.vel.Scale(dt))
	}
}

func (e *Engine) Gravity() gamemath.Vec {
	return e.gravity
}

// Touch declares a and b in contact from now on.
func (e *Engine) Touch(a, b physics.Handle) {
	ba, okA := e.bodies[a]
	bb, okB := e.bodies[b]
	if !okA || !okB || a == b {
		return
	}
	ba.contacts[b] = struct{}{}
	bb.contacts[a] = struct{}{}
}

// Separate removes a contact declared with Touch.
func (e *Engine) Separate(a, b physics.Handle) {
	if ba, ok := e.bodies[a]; ok {
		delete(ba.contacts, b)
	}
	if bb, ok := e.bodies[b]; ok {
		delete(bb.contacts, a)
	}
}

// SetImpactVelocity overrides the recorded pre-step velocity of h.
func (e *Engine) SetImpactVelocity(h physics.Handle, v gamemath.Vec) {
	if b, ok := e.bodies[h]; ok {
		b.impact = v
	}
}

// Def returns the definition h was created with.
func (e *Engine) Def(h physics.Handle) (physics.BodyDef, bool) {
	b, ok := e.bodies[h]
	if !ok {
		return physics.BodyDef{}, false
	}
	return b.def, true
}

// Len returns the number of live bodies.
func (e *Engine) Len() int {
	return len(e.bodies)
}

func sortHandles(hs []physics.Handle) {
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
}
