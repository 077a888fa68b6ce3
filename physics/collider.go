package physics

import (
	"math"

	"github.com/automoto/slingshot/gamemath"
)

// ColliderKind is the geometry family of a Collider.
type ColliderKind int

const (
	Circle ColliderKind = iota
	Rectangle
	Triangle
	Capsule
)

func (k ColliderKind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	case Triangle:
		return "triangle"
	case Capsule:
		return "capsule"
	}
	return "unknown"
}

// Collider is body geometry in local space, centered on the body position.
type Collider struct {
	Kind   ColliderKind
	Radius float64 // Circle, Capsule
	Width  float64 // Rectangle
	Height float64 // Rectangle
	Length float64 // Capsule: distance between the two end centers, along local x
	Points [3]gamemath.Vec
}

func CircleCollider(r float64) Collider {
	return Collider{Kind: Circle, Radius: r}
}

func RectCollider(w, h float64) Collider {
	return Collider{Kind: Rectangle, Width: w, Height: h}
}

func TriangleCollider(a, b, c gamemath.Vec) Collider {
	return Collider{Kind: Triangle, Points: [3]gamemath.Vec{a, b, c}}
}

func CapsuleCollider(r, length float64) Collider {
	return Collider{Kind: Capsule, Radius: r, Length: length}
}

// Contains reports whether the local-space point p lies inside the collider.
func (c Collider) Contains(p gamemath.Vec) bool {
	switch c.Kind {
	case Circle:
		return p.Len() <= c.Radius
	case Rectangle:
		return math.Abs(p.X) <= c.Width/2 && math.Abs(p.Y) <= c.Height/2
	case Triangle:
		a, b, d := c.Points[0], c.Points[1], c.Points[2]
		s1 := cross(b.Sub(a), p.Sub(a))
		s2 := cross(d.Sub(b), p.Sub(b))
		s3 := cross(a.Sub(d), p.Sub(d))
		hasNeg := s1 < 0 || s2 < 0 || s3 < 0
		hasPos := s1 > 0 || s2 > 0 || s3 > 0
		return !(hasNeg && hasPos)
	case Capsule:
		half := c.Length / 2
		x := math.Max(-half, math.Min(half, p.X))
		return p.Dist(gamemath.V(x, 0)) <= c.Radius
	}
	return false
}

// ContainsWorld reports whether world point p lies inside the collider placed
// at pos with the given rotation.
func (c Collider) ContainsWorld(pos gamemath.Vec, rotation float64, p gamemath.Vec) bool {
	return c.Contains(p.Sub(pos).Rotate(-rotation))
}

// Area returns the collider's surface area.
func (c Collider) Area() float64 {
	switch c.Kind {
	case Circle:
		return math.Pi * c.Radius * c.Radius
	case Rectangle:
		return c.Width * c.Height
	case Triangle:
		a, b, d := c.Points[0], c.Points[1], c.Points[2]
		return math.Abs(cross(b.Sub(a), d.Sub(a))) / 2
	case Capsule:
		return math.Pi*c.Radius*c.Radius + 2*c.Radius*c.Length
	}
	return 0
}

// Outline returns the collider's boundary in world space, for debug drawing.
// Circles and capsules are approximated with segments.
func (c Collider) Outline(pos gamemath.Vec, rotation float64) []gamemath.Vec {
	var local []gamemath.Vec
	switch c.Kind {
	case Circle:
		local = arc(gamemath.Vec{}, c.Radius, 0, 2*math.Pi, 24)
	case Rectangle:
		w, h := c.Width/2, c.Height/2
		local = []gamemath.Vec{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}
	case Triangle:
		local = c.Points[:]
	case Capsule:
		half := c.Length / 2
		local = append(arc(gamemath.V(half, 0), c.Radius, -math.Pi/2, math.Pi/2, 12),
			arc(gamemath.V(-half, 0), c.Radius, math.Pi/2, 3*math.Pi/2, 12)...)
	}
	out := make([]gamemath.Vec, len(local))
	for i, p := range local {
		out[i] = p.Rotate(rotation).Add(pos)
	}
	return out
}

func arc(center gamemath.Vec, r, from, to float64, segments int) []gamemath.Vec {
	pts := make([]gamemath.Vec, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := from + (to-from)*float64(i)/float64(segments)
		pts = append(pts, center.Add(gamemath.V(math.Cos(a)*r, math.Sin(a)*r)))
	}
	return pts
}

func cross(a, b gamemath.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}
