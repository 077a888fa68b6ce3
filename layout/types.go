package layout

import (
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
)

// Shape is the fixed set of structural piece geometries
type Shape int

const (
	LargeSquare Shape = iota
	MediumSquare
	SmallSquare
	LongBeam
	ShortBeam
	Triangle
)

func (s Shape) String() string {
	switch s {
	case LargeSquare:
		return "large_square"
	case MediumSquare:
		return "medium_square"
	case SmallSquare:
		return "small_square"
	case LongBeam:
		return "long_beam"
	case ShortBeam:
		return "short_beam"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// Material decides a piece's destruction threshold and body type
type Material int

const (
	Wood Material = iota
	Steel
	InvisibleSupport
)

func (m Material) String() string {
	switch m {
	case Wood:
		return "wood"
	case Steel:
		return "steel"
	case InvisibleSupport:
		return "invisible"
	}
	return "unknown"
}

// TargetKind is the fixed set of objective entities
type TargetKind int

const (
	Ordinary TargetKind = iota
	Boss
	RedBird
	BlueBird
	YellowBird
)

func (k TargetKind) String() string {
	switch k {
	case Ordinary:
		return "pig"
	case Boss:
		return "boss_pig"
	case RedBird:
		return "red_bird"
	case BlueBird:
		return "blue_bird"
	case YellowBird:
		return "yellow_bird"
	}
	return "unknown"
}

// PiecePlacement places one structural piece
type PiecePlacement struct {
	Shape      Shape
	Material   Material
	Position   gamemath.Vec
	Rotation   float64
	Annotation string
}

// TargetPlacement places one objective
type TargetPlacement struct {
	Kind     TargetKind
	Position gamemath.Vec
}

// Layout is a complete, static description of one level's structure
type Layout struct {
	Name    string
	Origin  gamemath.Vec
	Pieces  []PiecePlacement
	Targets []TargetPlacement
}

// Triangle geometry: an isosceles triangle with its centroid at the origin.
const (
	triangleBase   = 80.0
	triangleHeight = 70.0
)

var shapeSizes = map[Shape]gamemath.Vec{
	LargeSquare:  {X: 80, Y: 80},
	MediumSquare: {X: 60, Y: 60},
	SmallSquare:  {X: 40, Y: 40},
	LongBeam:     {X: 220, Y: 22},
	ShortBeam:    {X: 72, Y: 22},
	Triangle:     {X: triangleBase, Y: triangleHeight},
}

// Size returns the bounding width and height of a shape.
func Size(s Shape) gamemath.Vec {
	return shapeSizes[s]
}

// Collider returns the fixed collision geometry for a shape.
func Collider(s Shape) physics.Collider {
	if s == Triangle {
		low := -triangleHeight / 3
		return physics.TriangleCollider(
			gamemath.V(-triangleBase/2, low),
			gamemath.V(triangleBase/2, low),
			gamemath.V(0, 2*triangleHeight/3),
		)
	}
	size := Size(s)
	return physics.RectCollider(size.X, size.Y)
}

// Bottom is the distance from a shape's center down to its resting edge.
func Bottom(s Shape) float64 {
	if s == Triangle {
		return triangleHeight / 3
	}
	return Size(s).Y / 2
}

// Top is the distance from a shape's center up to its highest point.
func Top(s Shape) float64 {
	return Size(s).Y - Bottom(s)
}

// TargetCollider returns the collision geometry for a target kind.
func TargetCollider(k TargetKind) physics.Collider {
	switch k {
	case Boss:
		return physics.CapsuleCollider(34, 24)
	case RedBird:
		return physics.CircleCollider(29)
	case BlueBird:
		return physics.CircleCollider(16)
	case YellowBird:
		return physics.TriangleCollider(gamemath.V(-22, -17), gamemath.V(22, -17), gamemath.V(0, 34))
	default:
		return physics.CircleCollider(26)
	}
}

// TargetBottom is the distance from a target's center down to its resting edge.
func TargetBottom(k TargetKind) float64 {
	c := TargetCollider(k)
	if c.Kind == physics.Triangle {
		return -c.Points[0].Y
	}
	return c.Radius
}
