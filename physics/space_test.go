package physics

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpace() (*Space, Handle) {
	s := NewSpace(gamemath.V(0, -980), 10)
	ground := s.Create(BodyDef{
		Mode:     Static,
		Collider: RectCollider(1000, 50),
		Position: gamemath.V(0, -300),
		Friction: 1,
		Data:     "ground",
	})
	return s, ground
}

func TestSpaceReportsRestingContact(t *testing.T) {
	s, ground := newTestSpace()
	ball := s.Create(BodyDef{
		Mode:     Dynamic,
		Collider: CircleCollider(29),
		Position: gamemath.V(0, -240),
		Density:  1,
		Friction: 1,
	})

	for i := 0; i < 30; i++ {
		s.Step(1.0 / 60.0)
	}

	assert.Contains(t, s.Contacts(ball), ground)
	assert.Contains(t, s.Contacts(ground), ball)
	assert.Less(t, s.Position(ball).Y, -240.0)
	assert.Equal(t, "ground", s.Data(ground))
}

func TestSpaceQueryPoint(t *testing.T) {
	s, ground := newTestSpace()
	box := s.Create(BodyDef{
		Mode:     Static,
		Collider: RectCollider(80, 80),
		Position: gamemath.V(200, 0),
	})

	assert.Equal(t, []Handle{ground}, s.QueryPoint(gamemath.V(-400, -300)))
	assert.Equal(t, []Handle{box}, s.QueryPoint(gamemath.V(230, 30)))
	assert.Empty(t, s.QueryPoint(gamemath.V(0, 300)))
}

func TestSpaceKinematicIgnoresGravityUntilDynamic(t *testing.T) {
	s, _ := newTestSpace()
	bird := s.Create(BodyDef{
		Mode:     Kinematic,
		Collider: CircleCollider(29),
		Position: gamemath.V(-300, -200),
		Density:  1,
	})

	for i := 0; i < 10; i++ {
		s.Step(1.0 / 60.0)
	}
	assert.Equal(t, gamemath.V(-300, -200), s.Position(bird))
	assert.Equal(t, Kinematic, s.Mode(bird))

	s.SetMode(bird, Dynamic)
	s.SetVelocity(bird, gamemath.V(600, 0))
	s.Step(1.0 / 60.0)
	s.Step(1.0 / 60.0)

	pos := s.Position(bird)
	require.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y))
	assert.Greater(t, pos.X, -300.0)
	assert.Less(t, pos.Y, -200.0)
	assert.Equal(t, Dynamic, s.Mode(bird))
	assert.InDelta(t, 600, s.ImpactVelocity(bird).X, 1)
}

func TestSpaceRemove(t *testing.T) {
	s, ground := newTestSpace()
	box := s.Create(BodyDef{Mode: Dynamic, Collider: RectCollider(10, 10), Density: 1})
	require.Equal(t, 2, s.Len())

	s.Remove(box)
	s.Remove(box)

	assert.False(t, s.Exists(box))
	assert.True(t, s.Exists(ground))
	assert.Equal(t, 1, s.Len())
	assert.Nil(t, s.Contacts(box))
	assert.Equal(t, gamemath.Vec{}, s.Velocity(box))
	s.Step(1.0 / 60.0)
}

func TestSpaceCreatesEveryColliderKind(t *testing.T) {
	s, _ := newTestSpace()
	kinds := []Collider{
		CircleCollider(10),
		RectCollider(20, 10),
		TriangleCollider(gamemath.V(-10, -10), gamemath.V(10, -10), gamemath.V(0, 10)),
		CapsuleCollider(8, 20),
	}
	for i, c := range kinds {
		h := s.Create(BodyDef{Mode: Dynamic, Collider: c, Position: gamemath.V(float64(i)*100, 0), Density: 1})
		assert.True(t, s.Exists(h), c.Kind.String())
	}
	s.Step(1.0 / 60.0)
	assert.Equal(t, 5, s.Len())
}

func TestSpaceSetPosition(t *testing.T) {
	s, ground := newTestSpace()
	bird := s.Create(BodyDef{
		Mode:     Kinematic,
		Collider: CircleCollider(29),
		Position: gamemath.V(-300, -200),
		Density:  1,
	})

	s.SetPosition(bird, gamemath.V(-340, -215))
	assert.Equal(t, gamemath.V(-340, -215), s.Position(bird))
	s.Step(1.0 / 60.0)
	assert.Equal(t, gamemath.V(-340, -215), s.Position(bird), "kinematic bodies stay where they are put")
	assert.Equal(t, []Handle{bird}, s.QueryPoint(gamemath.V(-340, -215)))

	assert.NotPanics(t, func() { s.SetPosition(Handle(999), gamemath.V(1, 1)) })
	assert.Equal(t, gamemath.V(0, -300), s.Position(ground))
}
