package layout

import "github.com/automoto/slingshot/gamemath"

// DefaultGroundTop is the surface of the default ground slab.
const DefaultGroundTop = -275.0

type level struct {
	name  string
	build func(b *builder, groundTop float64)
}

var levels = []level{
	{name: "Complex Tower", build: complexTower},
	{name: "Bridge", build: bridge},
	{name: "Twin Spires", build: twinSpires},
}

// Count returns the number of built-in levels.
func Count() int {
	return len(levels)
}

// Name returns the display name of a level.
func Name(index int) string {
	return levels[wrap(index)].name
}

// Generate returns the layout of a level resting on the default ground.
func Generate(index int) Layout {
	return GenerateAt(index, DefaultGroundTop)
}

// GenerateAt returns the layout of a level whose lowest pieces rest on
// groundTop. Indices outside the level list wrap around.
func GenerateAt(index int, groundTop float64) Layout {
	lv := levels[wrap(index)]
	b := &builder{layout: Layout{Name: lv.name}}
	lv.build(b, groundTop)
	return b.layout
}

func wrap(index int) int {
	n := len(levels)
	return ((index % n) + n) % n
}

type builder struct {
	layout Layout
}

func (b *builder) origin(p gamemath.Vec) {
	b.layout.Origin = p
}

func (b *builder) piece(s Shape, m Material, p gamemath.Vec, annotation string) {
	b.layout.Pieces = append(b.layout.Pieces, PiecePlacement{
		Shape:      s,
		Material:   m,
		Position:   p,
		Annotation: annotation,
	})
}

func (b *builder) target(k TargetKind, p gamemath.Vec) {
	b.layout.Targets = append(b.layout.Targets, TargetPlacement{Kind: k, Position: p})
}

// on returns the center height of shape s resting on a surface.
func on(surface float64, s Shape) float64 {
	return surface + Bottom(s)
}

// above returns the top surface of shape s centered at center.
func above(center float64, s Shape) float64 {
	return center + Top(s)
}

// targetOn returns the center height of a target resting on a surface.
func targetOn(surface float64, k TargetKind) float64 {
	return surface + TargetBottom(k)
}

func complexTower(b *builder, groundTop float64) {
	x := 200.0
	b.origin(gamemath.V(x, groundTop))

	pillar, plank, block, crate := LargeSquare, ShortBeam, MediumSquare, LargeSquare
	plankW := Size(plank).X

	base := on(groundTop, pillar)
	upper := on(above(base, pillar), pillar)
	floor1 := on(above(upper, pillar), plank)
	floor2 := on(above(floor1, plank), block)
	roof := on(above(floor2, block), plank)
	top := on(above(roof, plank), crate)

	// Base layer
	b.piece(pillar, Steel, gamemath.V(x, base), "Steel pillar: only a bird faster than 800 dents it.")
	b.piece(pillar, Steel, gamemath.V(x, upper), "")
	b.piece(pillar, Steel, gamemath.V(x+200, base), "")
	b.piece(pillar, Steel, gamemath.V(x+200, upper), "Steel pillar: only a bird faster than 800 dents it.")
	b.target(Ordinary, gamemath.V(x+100, targetOn(groundTop, Ordinary)))

	// First floor
	for i := 0; i < 4; i++ {
		b.piece(plank, Wood, gamemath.V(x+float64(i)*plankW, floor1), "")
	}

	// Second floor
	b.piece(block, Wood, gamemath.V(x+40, floor2), "Wooden block: splinters above 600.")
	b.piece(block, Wood, gamemath.V(x+160, floor2), "")
	b.target(Ordinary, gamemath.V(x+100, targetOn(above(floor1, plank), Ordinary)))

	// Roof
	for i := 0; i < 3; i++ {
		b.piece(plank, Wood, gamemath.V(x+40+float64(i)*plankW, roof), "")
	}

	// Top
	b.piece(crate, Wood, gamemath.V(x+100, top), "Wooden crate guarding the top pig.")
	b.target(Ordinary, gamemath.V(x+100, targetOn(above(top, crate), Ordinary)))
}

func bridge(b *builder, groundTop float64) {
	x := 150.0
	b.origin(gamemath.V(x, groundTop))

	pillar, deck, prop, ledge := MediumSquare, LongBeam, SmallSquare, ShortBeam
	left, right := x, x+160
	span := (left + right) / 2

	lower := on(groundTop, pillar)
	upper := on(above(lower, pillar), pillar)
	deckY := on(above(upper, pillar), deck)
	peak := on(above(deckY, deck), Triangle)
	// The balcony prop floats at the height of the lower pillar tops.
	propY := on(above(lower, pillar), prop)
	balcony := on(above(propY, prop), ledge)
	balconyX := x + 250

	b.piece(pillar, Steel, gamemath.V(left, lower), "")
	b.piece(pillar, Steel, gamemath.V(right, lower), "Steel footing.")
	b.piece(pillar, Wood, gamemath.V(left, upper), "")
	b.piece(pillar, Wood, gamemath.V(right, upper), "")
	b.piece(deck, Wood, gamemath.V(span, deckY), "Bridge deck: one long wooden beam.")
	b.piece(Triangle, Steel, gamemath.V(span, peak), "Steel wedge.")
	b.target(Ordinary, gamemath.V(left-10, targetOn(above(deckY, deck), Ordinary)))
	b.target(Boss, gamemath.V(span, targetOn(groundTop, Boss)))

	b.piece(prop, InvisibleSupport, gamemath.V(balconyX, propY), "Something unseen holds the balcony up.")
	b.piece(ledge, Wood, gamemath.V(balconyX, balcony), "")
	b.target(YellowBird, gamemath.V(balconyX, targetOn(above(balcony, ledge), YellowBird)))
}

func twinSpires(b *builder, groundTop float64) {
	x := 120.0
	b.origin(gamemath.V(x, groundTop))

	foot, mid, head, prop, ledge := LargeSquare, MediumSquare, SmallSquare, SmallSquare, ShortBeam

	s1 := on(groundTop, foot)
	s2 := on(above(s1, foot), mid)
	s3 := on(above(s2, mid), head)
	tip := on(above(s3, head), Triangle)
	propY := on(above(s1, foot), prop)
	ledgeY := on(above(propY, prop), ledge)

	for i, sx := range []float64{x, x + 260} {
		note := ""
		if i == 0 {
			note = "Spire footing: solid steel."
		}
		b.piece(foot, Steel, gamemath.V(sx, s1), note)
		b.piece(mid, Wood, gamemath.V(sx, s2), "")
		b.piece(head, Steel, gamemath.V(sx, s3), "")
		b.piece(Triangle, Wood, gamemath.V(sx, tip), "")
	}

	b.piece(prop, InvisibleSupport, gamemath.V(x+90, propY), "")
	b.piece(prop, InvisibleSupport, gamemath.V(x+170, propY), "")
	b.piece(ledge, Wood, gamemath.V(x+90, ledgeY), "Left ledge.")
	b.piece(ledge, Wood, gamemath.V(x+170, ledgeY), "Right ledge.")

	b.target(BlueBird, gamemath.V(x+90, targetOn(above(ledgeY, ledge), BlueBird)))
	b.target(Ordinary, gamemath.V(x+170, targetOn(above(ledgeY, ledge), Ordinary)))
	b.target(Ordinary, gamemath.V(x+130, targetOn(groundTop, Ordinary)))
}
