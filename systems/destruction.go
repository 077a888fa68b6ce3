package systems

import (
	"github.com/automoto/slingshot/assert"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/layout"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Threshold returns the impact speed a piece of material m must be hit
// with, strictly exceeded, to be destroyed.
func Threshold(m layout.Material) float64 {
	switch m {
	case layout.Steel:
		return cfg.Destruction.Steel
	case layout.Wood:
		return cfg.Destruction.Wood
	case layout.InvisibleSupport:
		return cfg.Destruction.InvisibleSupport
	}
	assert.Invariant(false, "unknown material", zap.Int("material", int(m)))
	return cfg.Destruction.Steel
}

// UpdateDestruction evaluates this step's contacts. Pieces touching the
// projectile break when its speed exceeds their material threshold. Targets
// touching anything break when their own speed exceeds the target threshold.
// Any removal then takes down every invisible support of the same structure.
// Nothing carries over between frames.
func UpdateDestruction(ecs *ecs.ECS) {
	engine := factory.Engine(ecs)
	if engine == nil {
		return
	}

	var doomed []*donburi.Entry
	seen := map[donburi.Entity]bool{}
	mark := func(e *donburi.Entry) {
		if !seen[e.Entity()] {
			seen[e.Entity()] = true
			doomed = append(doomed, e)
		}
	}

	if bird, ok := CurrentProjectile(ecs); ok {
		h := components.Body.Get(bird).Handle
		speed := physics.ImpactSpeed(engine, h)
		for _, other := range engine.Contacts(h) {
			e, ok := factory.EntityOf(ecs, other)
			if !assert.Invariant(ok, "contact with a removed body", zap.Uint64("handle", uint64(other))) {
				continue
			}
			if !e.HasComponent(components.Piece) {
				continue
			}
			if gamemath.Exceeds(speed, Threshold(components.Piece.Get(e).Material)) {
				mark(e)
			}
		}
	}

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Body.Get(e).Handle
		if len(engine.Contacts(h)) == 0 {
			return
		}
		if gamemath.Exceeds(physics.ImpactSpeed(engine, h), cfg.Destruction.Target) {
			mark(e)
		}
	})

	if len(doomed) == 0 {
		return
	}

	structures := map[uuid.UUID]bool{}
	for _, e := range doomed {
		structures[structureOf(e)] = true
		destroy(ecs, e)
	}

	var supports []*donburi.Entry
	tags.Support.Each(ecs.World, func(e *donburi.Entry) {
		if structures[components.Piece.Get(e).Structure] {
			supports = append(supports, e)
		}
	})
	for _, e := range supports {
		destroy(ecs, e)
	}
}

func structureOf(e *donburi.Entry) uuid.UUID {
	if e.HasComponent(components.Piece) {
		return components.Piece.Get(e).Structure
	}
	if e.HasComponent(components.Target) {
		return components.Target.Get(e).Structure
	}
	return uuid.Nil
}

// destroy removes a piece or target and credits the score.
func destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	engine := factory.Engine(ecs)
	pos := engine.Position(components.Body.Get(e).Handle)

	points := award(ecs, e)
	if points > 0 {
		factory.CreatePopup(ecs, formatPoints(points), pos)
	}

	if e.HasComponent(components.Piece) {
		p := components.Piece.Get(e)
		zap.L().Debug("piece destroyed",
			zap.String("material", p.Material.String()),
			zap.String("shape", p.Shape.String()),
			zap.Int("points", points),
		)
	} else if e.HasComponent(components.Target) {
		zap.L().Debug("target destroyed",
			zap.String("kind", components.Target.Get(e).Kind.String()),
			zap.Int("points", points),
		)
	}
	factory.Destroy(ecs, e)
}
