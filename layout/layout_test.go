package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	name     string
	min, max gamemath.Vec
}

func bounds(name string, c physics.Collider, pos gamemath.Vec, rot float64) box {
	b := box{name: name, min: gamemath.V(math.Inf(1), math.Inf(1)), max: gamemath.V(math.Inf(-1), math.Inf(-1))}
	for _, p := range c.Outline(pos, rot) {
		b.min.X, b.min.Y = math.Min(b.min.X, p.X), math.Min(b.min.Y, p.Y)
		b.max.X, b.max.Y = math.Max(b.max.X, p.X), math.Max(b.max.Y, p.Y)
	}
	return b
}

func boxes(l Layout) []box {
	var out []box
	for i, p := range l.Pieces {
		out = append(out, bounds(fmt.Sprintf("piece %d %s/%s", i, p.Material, p.Shape), Collider(p.Shape), p.Position, p.Rotation))
	}
	for i, t := range l.Targets {
		out = append(out, bounds(fmt.Sprintf("target %d %s", i, t.Kind), TargetCollider(t.Kind), t.Position, 0))
	}
	return out
}

func TestGenerateIsDeterministic(t *testing.T) {
	for i := 0; i < Count(); i++ {
		a, b := Generate(i), Generate(i)
		assert.Equal(t, a, b, Name(i))
		assert.Equal(t, a.Fingerprint(), b.Fingerprint(), Name(i))
	}
}

func TestLevelsDiffer(t *testing.T) {
	seen := map[uint64]string{}
	for i := 0; i < Count(); i++ {
		fp := Generate(i).Fingerprint()
		_, dup := seen[fp]
		assert.False(t, dup, "level %d duplicates %s", i, seen[fp])
		seen[fp] = Name(i)
	}
}

func TestGenerateWrapsIndex(t *testing.T) {
	assert.Equal(t, Generate(0), Generate(Count()))
	assert.Equal(t, Generate(Count()-1), Generate(-1))
	assert.Equal(t, "Complex Tower", Name(0))
}

func TestGroundChangeCascadesToEveryPlacement(t *testing.T) {
	for i := 0; i < Count(); i++ {
		low := GenerateAt(i, DefaultGroundTop)
		high := GenerateAt(i, DefaultGroundTop+100)
		require.Len(t, high.Pieces, len(low.Pieces))
		for j := range low.Pieces {
			assert.InDelta(t, low.Pieces[j].Position.X, high.Pieces[j].Position.X, 1e-9)
			assert.InDelta(t, low.Pieces[j].Position.Y+100, high.Pieces[j].Position.Y, 1e-9)
		}
		for j := range low.Targets {
			assert.InDelta(t, low.Targets[j].Position.Y+100, high.Targets[j].Position.Y, 1e-9)
		}
	}
}

func TestPlacementsDoNotOverlap(t *testing.T) {
	const slack = 1e-6
	for i := 0; i < Count(); i++ {
		bs := boxes(Generate(i))
		for a := 0; a < len(bs); a++ {
			for b := a + 1; b < len(bs); b++ {
				ox := math.Min(bs[a].max.X, bs[b].max.X) - math.Max(bs[a].min.X, bs[b].min.X)
				oy := math.Min(bs[a].max.Y, bs[b].max.Y) - math.Max(bs[a].min.Y, bs[b].min.Y)
				assert.False(t, ox > slack && oy > slack, "%s: %s overlaps %s", Name(i), bs[a].name, bs[b].name)
			}
		}
	}
}

func TestNothingBelowGround(t *testing.T) {
	for i := 0; i < Count(); i++ {
		for _, b := range boxes(Generate(i)) {
			assert.GreaterOrEqual(t, b.min.Y, DefaultGroundTop-1e-6, "%s: %s", Name(i), b.name)
		}
	}
}

func TestLevelsCarryTargetsAndSupports(t *testing.T) {
	tower := Generate(0)
	assert.Len(t, tower.Targets, 3)
	assert.Equal(t, 0, tower.Supports())

	assert.Equal(t, 1, Generate(1).Supports())
	assert.Equal(t, 2, Generate(2).Supports())
}

func TestStackOffsetsUseShapeHeights(t *testing.T) {
	tower := Generate(0)
	base := tower.Pieces[0]
	upper := tower.Pieces[1]
	assert.Equal(t, DefaultGroundTop+Bottom(LargeSquare), base.Position.Y)
	assert.Equal(t, base.Position.Y+Size(LargeSquare).Y, upper.Position.Y)
}

func TestShapeGeometry(t *testing.T) {
	for s := LargeSquare; s <= Triangle; s++ {
		size := Size(s)
		assert.Positive(t, size.X, s.String())
		assert.InDelta(t, size.Y, Top(s)+Bottom(s), 1e-9, s.String())
	}
	assert.Equal(t, physics.Triangle, Collider(Triangle).Kind)
	assert.Equal(t, physics.Rectangle, Collider(LongBeam).Kind)
	assert.Equal(t, physics.Capsule, TargetCollider(Boss).Kind)
	assert.Equal(t, 26.0, TargetCollider(Ordinary).Radius)
	assert.Equal(t, 17.0, TargetBottom(YellowBird))
}

func TestFingerprintSeesAnnotationsAndPositions(t *testing.T) {
	l := Generate(0)
	fp := l.Fingerprint()

	moved := Generate(0)
	moved.Pieces[3].Position.X += 0.5
	assert.NotEqual(t, fp, moved.Fingerprint())

	annotated := Generate(0)
	annotated.Pieces[2].Annotation = "new"
	assert.NotEqual(t, fp, annotated.Fingerprint())
}
