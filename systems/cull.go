package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// InBounds reports whether p lies inside the playable world rectangle.
func InBounds(p gamemath.Vec) bool {
	lo, hi := cfg.World.BoundsMin, cfg.World.BoundsMax
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// UpdateCull removes dynamic bodies that left the world. A culled target
// scores as destroyed. A projectile is only culled once launched.
func UpdateCull(ecs *ecs.ECS) {
	engine := factory.Engine(ecs)
	if engine == nil {
		return
	}

	var lost, targets, birds []*donburi.Entry
	outside := func(e *donburi.Entry) bool {
		h := components.Body.Get(e).Handle
		return engine.Mode(h) == physics.Dynamic && !InBounds(engine.Position(h))
	}

	tags.Piece.Each(ecs.World, func(e *donburi.Entry) {
		if outside(e) {
			lost = append(lost, e)
		}
	})
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		if outside(e) {
			targets = append(targets, e)
		}
	})
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Projectile.Get(e).OnLauncher && outside(e) {
			birds = append(birds, e)
		}
	})

	for _, e := range lost {
		factory.Destroy(ecs, e)
	}
	for _, e := range targets {
		destroy(ecs, e)
	}
	for _, e := range birds {
		factory.Destroy(ecs, e)
	}
	if n := len(lost) + len(targets) + len(birds); n > 0 {
		zap.L().Debug("culled out of bounds",
			zap.Int("pieces", len(lost)),
			zap.Int("targets", len(targets)),
			zap.Int("projectiles", len(birds)),
		)
	}
}
