package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a bird resting on the launcher. It stays
// kinematic until launched.
func CreateProjectile(ecs *ecs.ECS) *donburi.Entry {
	bird := archetypes.Projectile.Spawn(ecs)

	components.Projectile.SetValue(bird, components.ProjectileData{
		OnLauncher: true,
		Density:    cfg.Projectile.Density,
	})
	components.Sprite.SetValue(bird, components.SpriteData{Image: assets.Sprite(cfg.Projectile.Sprite)})

	h := Engine(ecs).Create(physics.BodyDef{
		Mode:       physics.Kinematic,
		Collider:   physics.CircleCollider(cfg.Projectile.Radius),
		Position:   cfg.World.Anchor.Add(cfg.Projectile.SpawnOffset),
		Density:    cfg.Projectile.Density,
		Friction:   cfg.Physics.Friction,
		Elasticity: cfg.Physics.Elasticity,
		Data:       bird.Entity(),
	})
	components.Body.SetValue(bird, components.BodyData{Handle: h})

	return bird
}
