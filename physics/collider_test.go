package physics

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestColliderContains(t *testing.T) {
	tri := TriangleCollider(gamemath.V(-40, -30), gamemath.V(40, -30), gamemath.V(0, 40))

	tests := []struct {
		name     string
		collider Collider
		point    gamemath.Vec
		want     bool
	}{
		{"circle center", CircleCollider(10), gamemath.V(0, 0), true},
		{"circle edge", CircleCollider(10), gamemath.V(10, 0), true},
		{"circle outside", CircleCollider(10), gamemath.V(7.5, 7.5), false},
		{"rect inside", RectCollider(80, 20), gamemath.V(39, -9), true},
		{"rect outside", RectCollider(80, 20), gamemath.V(0, 11), false},
		{"triangle inside", tri, gamemath.V(0, 0), true},
		{"triangle outside corner", tri, gamemath.V(35, 30), false},
		{"capsule cap", CapsuleCollider(10, 40), gamemath.V(28, 0), true},
		{"capsule body", CapsuleCollider(10, 40), gamemath.V(0, 9), true},
		{"capsule outside", CapsuleCollider(10, 40), gamemath.V(31, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.collider.Contains(tt.point))
		})
	}
}

func TestColliderContainsWorldHonorsRotation(t *testing.T) {
	beam := RectCollider(100, 10)
	pos := gamemath.V(200, 50)

	assert.True(t, beam.ContainsWorld(pos, 0, gamemath.V(245, 50)))
	assert.False(t, beam.ContainsWorld(pos, 0, gamemath.V(200, 95)))

	assert.False(t, beam.ContainsWorld(pos, math.Pi/2, gamemath.V(245, 50)))
	assert.True(t, beam.ContainsWorld(pos, math.Pi/2, gamemath.V(200, 95)))
}

func TestColliderArea(t *testing.T) {
	assert.InDelta(t, 1600, RectCollider(80, 20).Area(), 1e-9)
	assert.InDelta(t, math.Pi*100, CircleCollider(10).Area(), 1e-9)
	assert.InDelta(t, 2800, TriangleCollider(gamemath.V(-40, -30), gamemath.V(40, -30), gamemath.V(0, 40)).Area(), 1e-9)
	assert.InDelta(t, math.Pi*100+800, CapsuleCollider(10, 40).Area(), 1e-9)
}

func TestOutlineTransformsPoints(t *testing.T) {
	pts := RectCollider(2, 2).Outline(gamemath.V(10, 10), 0)
	assert.Equal(t, []gamemath.Vec{{X: 9, Y: 9}, {X: 11, Y: 9}, {X: 11, Y: 11}, {X: 9, Y: 11}}, pts)
	assert.NotEmpty(t, CapsuleCollider(5, 10).Outline(gamemath.Vec{}, 1))
}
