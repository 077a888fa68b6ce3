package systems

import (
	"github.com/automoto/slingshot/assert"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CurrentProjectile returns the single live projectile. A second one is a
// programmer error: it is reported and the first found is used.
func CurrentProjectile(ecs *ecs.ECS) (*donburi.Entry, bool) {
	var first *donburi.Entry
	n := 0
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if first == nil {
			first = e
		}
		n++
	})
	assert.Invariant(n <= 1, "more than one projectile", zap.Int("count", n))
	return first, first != nil
}

// ProjectileCount returns the number of live projectiles.
func ProjectileCount(ecs *ecs.ECS) int {
	return count(ecs, tags.Projectile)
}

// OnLauncher reports whether a projectile is resting on the launcher.
func OnLauncher(ecs *ecs.ECS) bool {
	bird, ok := CurrentProjectile(ecs)
	return ok && components.Projectile.Get(bird).OnLauncher
}

func removeProjectiles(ecs *ecs.ECS) int {
	var birds []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		birds = append(birds, e)
	})
	for _, b := range birds {
		factory.Destroy(ecs, b)
	}
	return len(birds)
}

func count[T any](ecs *ecs.ECS, ct *donburi.ComponentType[T]) int {
	n := 0
	ct.Each(ecs.World, func(*donburi.Entry) { n++ })
	return n
}
