package factory

import (
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/layout"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/physics/physicstest"
	"github.com/automoto/slingshot/tags"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWorld(t *testing.T) (*ecs.ECS, *physicstest.Engine) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	engine := physicstest.New(gamemath.Vec{})
	CreatePhysics(e, engine)
	return e, engine
}

func TestInstantiateLevels(t *testing.T) {
	for i := range layout.Count() {
		l := layout.Generate(i)
		t.Run(l.Name, func(t *testing.T) {
			e, engine := newWorld(t)
			id := Instantiate(e, l)
			require.NotEqual(t, uuid.Nil, id)

			pieces, supports, targets := 0, 0, 0
			tags.Piece.Each(e.World, func(entry *donburi.Entry) {
				pieces++
				p := components.Piece.Get(entry)
				assert.Equal(t, id, p.Structure)

				h := components.Body.Get(entry).Handle
				if p.Material == layout.InvisibleSupport {
					supports++
					assert.True(t, entry.HasComponent(tags.Support))
					assert.False(t, entry.HasComponent(components.Sprite), "supports are never drawn")
					assert.Equal(t, physics.Static, engine.Mode(h))
				} else {
					assert.Equal(t, physics.Dynamic, engine.Mode(h))
				}
			})
			tags.Target.Each(e.World, func(entry *donburi.Entry) {
				targets++
				assert.Equal(t, id, components.Target.Get(entry).Structure)
				assert.Equal(t, physics.Dynamic, engine.Mode(components.Body.Get(entry).Handle))
			})

			assert.Equal(t, len(l.Pieces), pieces)
			assert.Equal(t, len(l.Targets), targets)
			assert.Equal(t, l.Supports(), supports)
			assert.Equal(t, pieces+targets, engine.Len())
		})
	}
}

func TestCreatePieceAnnotation(t *testing.T) {
	e, engine := newWorld(t)
	id := uuid.New()

	plain := CreatePiece(e, id, layout.PiecePlacement{Shape: layout.SmallSquare, Material: layout.Wood})
	noted := CreatePiece(e, id, layout.PiecePlacement{
		Shape:      layout.LongBeam,
		Material:   layout.Steel,
		Position:   gamemath.V(10, 20),
		Rotation:   0.5,
		Annotation: "a steel beam",
	})

	assert.False(t, plain.HasComponent(components.Annotation))
	require.True(t, noted.HasComponent(components.Annotation))
	assert.Equal(t, "a steel beam", components.Annotation.Get(noted).Text)

	// No asset directory in tests: bodies exist even without images.
	assert.Nil(t, components.Sprite.Get(noted).Image)
	h := components.Body.Get(noted).Handle
	def, ok := engine.Def(h)
	require.True(t, ok)
	assert.Equal(t, gamemath.V(10, 20), def.Position)
	assert.Equal(t, 0.5, def.Rotation)
	assert.Equal(t, cfg.Piece.SteelDensity, def.Density)
	assert.Equal(t, layout.Collider(layout.LongBeam), def.Collider)
}

func TestCreateProjectile(t *testing.T) {
	e, engine := newWorld(t)
	bird := CreateProjectile(e)

	p := components.Projectile.Get(bird)
	assert.True(t, p.OnLauncher)
	h := components.Body.Get(bird).Handle
	assert.Equal(t, physics.Kinematic, engine.Mode(h))
	assert.Equal(t, cfg.World.Anchor.Add(cfg.Projectile.SpawnOffset), engine.Position(h))
}

func TestEntityOfAndDestroy(t *testing.T) {
	e, engine := newWorld(t)
	ground := CreateGround(e)
	h := components.Body.Get(ground).Handle

	got, ok := EntityOf(e, h)
	require.True(t, ok)
	assert.Equal(t, ground.Entity(), got.Entity())

	Destroy(e, ground)
	assert.False(t, ground.Valid())
	assert.False(t, engine.Exists(h))

	_, ok = EntityOf(e, h)
	assert.False(t, ok)
	assert.NotPanics(t, func() { Destroy(e, ground) })
}

func TestAnchorHasNoCollider(t *testing.T) {
	e, engine := newWorld(t)
	anchor := CreateAnchor(e)
	assert.False(t, anchor.HasComponent(components.Body))
	assert.Zero(t, engine.Len())
	assert.Equal(t, cfg.World.Anchor, components.Placement.Get(anchor).Position)
}

func TestDensity(t *testing.T) {
	assert.Equal(t, cfg.Piece.WoodDensity, Density(layout.Wood))
	assert.Equal(t, cfg.Piece.SteelDensity, Density(layout.Steel))
	assert.Zero(t, Density(layout.InvisibleSupport))
}

func TestEngineMissing(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.Nil(t, Engine(e))
	_, ok := EntityOf(e, 1)
	assert.False(t, ok)
}
