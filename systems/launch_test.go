package systems

import (
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpulseIsScaledDragVector(t *testing.T) {
	tests := []struct {
		start, release, want gamemath.Vec
	}{
		{gamemath.V(0, 0), gamemath.V(-10, 0), gamemath.V(150, 0)},
		{gamemath.V(-300, -200), gamemath.V(-340, -230), gamemath.V(600, 450)},
		{gamemath.V(5, 5), gamemath.V(5, 5), gamemath.V(0, 0)},
		{gamemath.V(1.5, -2), gamemath.V(3.5, 2), gamemath.V(-30, -60)},
	}
	for _, tt := range tests {
		got := Impulse(tt.start, tt.release)
		assert.Equal(t, tt.want, got, "%v -> %v", tt.start, tt.release)
	}
	assert.Equal(t, 15.0, cfg.Launch.ImpulseScale)
}

func TestDragKeepsProjectileKinematic(t *testing.T) {
	f := newFixture(t, defaultGravity()).withLayout(stack())
	bird, h := f.bird()
	start := f.birdPos()

	SetPointerWorld(f.ecs, start, true, true, false)
	UpdateLaunch(f.ecs)
	require.True(t, GetOrCreateDrag(f.ecs).Dragging)
	assert.Equal(t, start, GetOrCreateDrag(f.ecs).Start)

	for _, p := range []gamemath.Vec{start.Add(gamemath.V(-10, 0)), start.Add(gamemath.V(-60, -30)), start.Add(gamemath.V(-80, 10))} {
		SetPointerWorld(f.ecs, p, false, true, false)
		UpdateLaunch(f.ecs)
		assert.Equal(t, physics.Kinematic, f.engine.Mode(h))
		assert.Equal(t, p, f.engine.Position(h))
		assert.True(t, components.Projectile.Get(bird).OnLauncher)
	}

	release := start.Add(gamemath.V(-80, 10))
	SetPointerWorld(f.ecs, release, false, false, true)
	UpdateLaunch(f.ecs)

	assert.False(t, GetOrCreateDrag(f.ecs).Dragging)
	assert.False(t, components.Projectile.Get(bird).OnLauncher)
	assert.Equal(t, physics.Dynamic, f.engine.Mode(h))
	assert.Equal(t, start.Sub(release).Scale(15), f.engine.Velocity(h))
	assert.Equal(t, 1, GetOrCreateScore(f.ecs).Launches)
}

func TestPressOutsidePickRadius(t *testing.T) {
	for _, d := range []float64{50, 51, 200} {
		f := newFixture(t, defaultGravity()).withLayout(stack())
		bird, h := f.bird()
		start := f.birdPos()

		SetPointerWorld(f.ecs, start.Add(gamemath.V(0, d)), true, true, false)
		UpdateLaunch(f.ecs)
		assert.False(t, GetOrCreateDrag(f.ecs).Dragging, "distance %v", d)

		SetPointerWorld(f.ecs, start.Add(gamemath.V(-40, 0)), false, false, true)
		UpdateLaunch(f.ecs)

		assert.True(t, components.Projectile.Get(bird).OnLauncher)
		assert.Equal(t, physics.Kinematic, f.engine.Mode(h))
		assert.Equal(t, gamemath.Vec{}, f.engine.Velocity(h))
		assert.Equal(t, start, f.engine.Position(h))
	}
}

func TestPressInsidePickRadius(t *testing.T) {
	f := newFixture(t, defaultGravity()).withLayout(stack())
	SetPointerWorld(f.ecs, f.birdPos().Add(gamemath.V(30, 39.9)), true, true, false)
	UpdateLaunch(f.ecs)
	assert.True(t, GetOrCreateDrag(f.ecs).Dragging)
}

func TestLaunchedProjectileCannotBeGrabbed(t *testing.T) {
	f := newFixture(t, noGravity()).withLayout(stack())
	f.withFrames(1)
	f.launch(gamemath.V(20, 0))
	_, h := f.bird()
	v := f.engine.Velocity(h)

	pos := f.birdPos()
	f.frame(pos, true, true, false)
	assert.False(t, GetOrCreateDrag(f.ecs).Dragging)
	f.frame(pos.Add(gamemath.V(-30, 0)), false, false, true)
	assert.Equal(t, v, f.engine.Velocity(h))
}

func TestLaunchWithoutProjectileIsNoop(t *testing.T) {
	f := newFixture(t, defaultGravity()).withLayout(stack())
	start := f.birdPos()
	removeProjectiles(f.ecs)

	require.NotPanics(t, func() {
		SetPointerWorld(f.ecs, start, true, true, false)
		UpdateLaunch(f.ecs)
		SetPointerWorld(f.ecs, start.Add(gamemath.V(-20, 0)), false, true, false)
		UpdateLaunch(f.ecs)
		SetPointerWorld(f.ecs, start.Add(gamemath.V(-40, 0)), false, false, true)
		UpdateLaunch(f.ecs)
	})
	assert.False(t, GetOrCreateDrag(f.ecs).Dragging)
	assert.Equal(t, 0, ProjectileCount(f.ecs))
	assert.Equal(t, 0, GetOrCreateScore(f.ecs).Launches)
}

func TestDragAbandonedWhenProjectileRemoved(t *testing.T) {
	f := newFixture(t, defaultGravity()).withLayout(stack())
	SetPointerWorld(f.ecs, f.birdPos(), true, true, false)
	UpdateLaunch(f.ecs)
	require.True(t, GetOrCreateDrag(f.ecs).Dragging)

	removeProjectiles(f.ecs)
	SetPointerWorld(f.ecs, gamemath.V(0, 0), false, true, false)
	UpdateLaunch(f.ecs)
	assert.False(t, GetOrCreateDrag(f.ecs).Dragging)
}

func TestDragEndsWhenButtonFoundUp(t *testing.T) {
	f := newFixture(t, noGravity()).withLayout(stack())
	bird, h := f.bird()
	start := f.birdPos()

	SetPointerWorld(f.ecs, start, true, true, false)
	UpdateLaunch(f.ecs)
	require.True(t, GetOrCreateDrag(f.ecs).Dragging)

	// No release edge is ever reported.
	up := start.Add(gamemath.V(-30, -10))
	SetPointerWorld(f.ecs, up, false, false, false)
	UpdateLaunch(f.ecs)

	assert.False(t, GetOrCreateDrag(f.ecs).Dragging)
	assert.False(t, components.Projectile.Get(bird).OnLauncher)
	assert.Equal(t, physics.Dynamic, f.engine.Mode(h))
	assert.Equal(t, Impulse(start, up), f.engine.Velocity(h))

	SetPointerWorld(f.ecs, up, false, false, true)
	UpdateLaunch(f.ecs)
	assert.Equal(t, 1, GetOrCreateScore(f.ecs).Launches, "a late release edge does not launch twice")
}
