package systems

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/layout"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/physics/physicstest"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fixture struct {
	t      *testing.T
	ecs    *ecs.ECS
	engine *physicstest.Engine
}

// newFixture returns a world with a scripted engine and the ground, but no
// structure yet.
func newFixture(t *testing.T, gravity gamemath.Vec) *fixture {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	engine := physicstest.New(gravity)
	factory.CreatePhysics(e, engine)
	factory.CreateGround(e)
	return &fixture{t: t, ecs: e, engine: engine}
}

// withLayout builds l as the current level with a projectile on the launcher.
func (f *fixture) withLayout(l layout.Layout) *fixture {
	lvl := factory.CreateLevel(f.ecs, 0)
	level := components.Level.Get(lvl)
	level.Layout = l
	level.Fingerprint = l.Fingerprint()
	ResetLevel(f.ecs)
	return f
}

// withFrames registers the full core system order.
func (f *fixture) withFrames(seed uint64) *fixture {
	AddCoreSystems(f.ecs, NewRespawnScheduler(rand.New(rand.NewPCG(seed, seed))))
	return f
}

func (f *fixture) frame(pointer gamemath.Vec, pressed, held, released bool) {
	SetPointerWorld(f.ecs, pointer, pressed, held, released)
	f.ecs.Update()
}

func (f *fixture) idle() {
	f.frame(gamemath.V(1e4, 1e4), false, false, false)
}

func (f *fixture) bird() (*donburi.Entry, physics.Handle) {
	f.t.Helper()
	b, ok := CurrentProjectile(f.ecs)
	require.True(f.t, ok, "no projectile")
	return b, components.Body.Get(b).Handle
}

func (f *fixture) birdPos() gamemath.Vec {
	_, h := f.bird()
	return f.engine.Position(h)
}

// launch drags from the bird to bird-pull and releases over two frames.
func (f *fixture) launch(pull gamemath.Vec) gamemath.Vec {
	start := f.birdPos()
	f.frame(start, true, true, false)
	release := start.Sub(pull)
	f.frame(release, false, false, true)
	return Impulse(start, release)
}

// pieces returns live pieces of material m ordered by x.
func (f *fixture) pieces(m layout.Material) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Piece.Each(f.ecs.World, func(e *donburi.Entry) {
		if components.Piece.Get(e).Material == m {
			out = append(out, e)
		}
	})
	return f.byX(out)
}

// targets returns live targets ordered by x.
func (f *fixture) targets() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Target.Each(f.ecs.World, func(e *donburi.Entry) { out = append(out, e) })
	return f.byX(out)
}

func (f *fixture) byX(es []*donburi.Entry) []*donburi.Entry {
	sort.SliceStable(es, func(i, j int) bool {
		return f.engine.Position(handleOf(es[i])).X < f.engine.Position(handleOf(es[j])).X
	})
	return es
}

func (f *fixture) ground() physics.Handle {
	f.t.Helper()
	g, ok := tags.Ground.First(f.ecs.World)
	require.True(f.t, ok)
	return components.Body.Get(g).Handle
}

func handleOf(e *donburi.Entry) physics.Handle {
	return components.Body.Get(e).Handle
}

func single(m layout.Material, s layout.Shape, at gamemath.Vec, note string) layout.PiecePlacement {
	return layout.PiecePlacement{Shape: s, Material: m, Position: at, Annotation: note}
}

// stack is a wood block on a steel block with a pig beside them.
func stack() layout.Layout {
	steel := single(layout.Steel, layout.LargeSquare, gamemath.V(200, -235), "steel base")
	wood := single(layout.Wood, layout.MediumSquare, gamemath.V(200, -165), "")
	return layout.Layout{
		Name:    "stack",
		Pieces:  []layout.PiecePlacement{steel, wood},
		Targets: []layout.TargetPlacement{{Kind: layout.Ordinary, Position: gamemath.V(300, -249)}},
	}
}

func noGravity() gamemath.Vec { return gamemath.Vec{} }

func defaultGravity() gamemath.Vec { return cfg.Physics.Gravity }
