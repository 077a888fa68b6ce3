package archetypes

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Piece = newArchetype(
		tags.Piece,
		components.Piece,
		components.Body,
		components.Placement,
		components.Sprite,
	)
	// Support pieces are never drawn, so they carry no sprite.
	Support = newArchetype(
		tags.Piece,
		tags.Support,
		components.Piece,
		components.Body,
		components.Placement,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Body,
		components.Placement,
		components.Sprite,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
		components.Sprite,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Anchor = newArchetype(
		tags.Anchor,
		components.Placement,
		components.Sprite,
	)
	Popup = newArchetype(
		tags.Popup,
		components.Popup,
	)
	Physics = newArchetype(
		components.Physics,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
