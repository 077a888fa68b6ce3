package physics

import (
	"sort"

	"github.com/automoto/slingshot/gamemath"
	"github.com/jakecoffman/cp"
)

// body is the Chipmunk state behind a Handle.
type body struct {
	body   *cp.Body
	shape  *cp.Shape
	def    BodyDef
	mode   BodyMode
	impact gamemath.Vec
}

// Space implements Engine on top of a Chipmunk2D space.
type Space struct {
	space   *cp.Space
	gravity gamemath.Vec
	bodies  map[Handle]*body
	shapes  map[*cp.Shape]Handle
	next    Handle
}

var _ Engine = (*Space)(nil)

// NewSpace creates an empty simulation with a fixed gravity vector.
func NewSpace(gravity gamemath.Vec, iterations int) *Space {
	space := cp.NewSpace()
	space.SetGravity(toCP(gravity))
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	return &Space{
		space:   space,
		gravity: gravity,
		bodies:  make(map[Handle]*body),
		shapes:  make(map[*cp.Shape]Handle),
	}
}

func (s *Space) Create(def BodyDef) Handle {
	var b *cp.Body
	switch def.Mode {
	case Static:
		b = cp.NewStaticBody()
	case Kinematic:
		b = cp.NewKinematicBody()
	default:
		// Mass and moment are accumulated from the shape density below.
		b = cp.NewBody(0, 0)
	}
	b.SetPosition(toCP(def.Position))
	b.SetAngle(def.Rotation)
	s.space.AddBody(b)

	shape := s.space.AddShape(newShape(b, def.Collider))
	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Elasticity)
	if def.Mode != Static {
		density := def.Density
		if density <= 0 {
			density = 1
		}
		// Kinematic bodies keep the density so switching to dynamic has mass.
		shape.SetDensity(density)
	}

	s.next++
	h := s.next
	s.bodies[h] = &body{body: b, shape: shape, def: def, mode: def.Mode}
	s.shapes[shape] = h
	return h
}

func newShape(b *cp.Body, c Collider) *cp.Shape {
	switch c.Kind {
	case Rectangle:
		return cp.NewBox(b, c.Width, c.Height, 0)
	case Triangle:
		verts := []cp.Vector{toCP(c.Points[0]), toCP(c.Points[1]), toCP(c.Points[2])}
		return cp.NewPolyShape(b, len(verts), verts, cp.NewTransformIdentity(), 0)
	case Capsule:
		half := c.Length / 2
		return cp.NewSegment(b, cp.Vector{X: -half}, cp.Vector{X: half}, c.Radius)
	default:
		return cp.NewCircle(b, c.Radius, cp.Vector{})
	}
}

func (s *Space) Remove(h Handle) {
	b, ok := s.bodies[h]
	if !ok {
		return
	}
	s.space.RemoveShape(b.shape)
	s.space.RemoveBody(b.body)
	delete(s.shapes, b.shape)
	delete(s.bodies, h)
}

func (s *Space) Exists(h Handle) bool {
	_, ok := s.bodies[h]
	return ok
}

func (s *Space) Data(h Handle) any {
	if b, ok := s.bodies[h]; ok {
		return b.def.Data
	}
	return nil
}

func (s *Space) Mode(h Handle) BodyMode {
	if b, ok := s.bodies[h]; ok {
		return b.mode
	}
	return Static
}

func (s *Space) SetMode(h Handle, mode BodyMode) {
	b, ok := s.bodies[h]
	if !ok || b.mode == mode {
		return
	}
	switch mode {
	case Static:
		b.body.SetType(cp.BODY_STATIC)
	case Kinematic:
		b.body.SetType(cp.BODY_KINEMATIC)
	case Dynamic:
		b.body.SetType(cp.BODY_DYNAMIC)
	}
	b.mode = mode
}

func (s *Space) Position(h Handle) gamemath.Vec {
	if b, ok := s.bodies[h]; ok {
		return fromCP(b.body.Position())
	}
	return gamemath.Vec{}
}

func (s *Space) SetPosition(h Handle, p gamemath.Vec) {
	if b, ok := s.bodies[h]; ok {
		b.body.SetPosition(toCP(p))
	}
}

func (s *Space) Rotation(h Handle) float64 {
	if b, ok := s.bodies[h]; ok {
		return b.body.Angle()
	}
	return 0
}

func (s *Space) Velocity(h Handle) gamemath.Vec {
	if b, ok := s.bodies[h]; ok {
		return fromCP(b.body.Velocity())
	}
	return gamemath.Vec{}
}

func (s *Space) SetVelocity(h Handle, v gamemath.Vec) {
	if b, ok := s.bodies[h]; ok {
		b.body.SetVelocityVector(toCP(v))
	}
}

func (s *Space) ImpactVelocity(h Handle) gamemath.Vec {
	if b, ok := s.bodies[h]; ok {
		return b.impact
	}
	return gamemath.Vec{}
}

func (s *Space) Contacts(h Handle) []Handle {
	b, ok := s.bodies[h]
	if !ok {
		return nil
	}
	var out []Handle
	b.body.EachArbiter(func(arb *cp.Arbiter) {
		a, o := arb.Shapes()
		other := o
		if other == b.shape {
			other = a
		}
		if oh, ok := s.shapes[other]; ok && oh != h {
			out = append(out, oh)
		}
	})
	sortHandles(out)
	return out
}

func (s *Space) QueryPoint(p gamemath.Vec) []Handle {
	point := toCP(p)
	var out []Handle
	for h, b := range s.bodies {
		if b.shape.PointQuery(point).Distance <= 0 {
			out = append(out, h)
		}
	}
	sortHandles(out)
	return out
}

func (s *Space) Step(dt float64) {
	for _, b := range s.bodies {
		b.impact = fromCP(b.body.Velocity())
	}
	s.space.Step(dt)
}

func (s *Space) Gravity() gamemath.Vec {
	return s.gravity
}

// Len returns the number of live bodies.
func (s *Space) Len() int {
	return len(s.bodies)
}

func sortHandles(hs []Handle) {
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
}

func toCP(v gamemath.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) gamemath.Vec {
	return gamemath.Vec{X: v.X, Y: v.Y}
}
