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

func CreateGround(ecs *ecs.ECS) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	h := Engine(ecs).Create(physics.BodyDef{
		Mode:       physics.Static,
		Collider:   physics.RectCollider(cfg.World.GroundSize.X, cfg.World.GroundSize.Y),
		Position:   cfg.World.GroundCenter,
		Friction:   cfg.Physics.Friction,
		Elasticity: cfg.Physics.Elasticity,
		Data:       ground.Entity(),
	})
	components.Body.SetValue(ground, components.BodyData{Handle: h})
	return ground
}

// CreateAnchor spawns the slingshot. It has no collider.
func CreateAnchor(ecs *ecs.ECS) *donburi.Entry {
	anchor := archetypes.Anchor.Spawn(ecs)
	components.Placement.SetValue(anchor, components.PlacementData{Position: cfg.World.Anchor})
	components.Sprite.SetValue(anchor, components.SpriteData{Image: assets.Sprite("slingshot.png")})
	return anchor
}
