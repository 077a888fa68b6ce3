package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/layout"
	"github.com/automoto/slingshot/physics"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePiece spawns one structure block. Real materials get a dynamic body,
// invisible supports a static one and no sprite.
func CreatePiece(ecs *ecs.ECS, structure uuid.UUID, p layout.PiecePlacement) *donburi.Entry {
	support := p.Material == layout.InvisibleSupport

	var piece *donburi.Entry
	if support {
		piece = archetypes.Support.Spawn(ecs)
	} else {
		piece = archetypes.Piece.Spawn(ecs)
		components.Sprite.SetValue(piece, components.SpriteData{
			Image: assets.Sprite(pieceSprite(p.Shape, p.Material)),
		})
	}

	components.Piece.SetValue(piece, components.PieceData{
		Shape:     p.Shape,
		Material:  p.Material,
		Structure: structure,
	})
	components.Placement.SetValue(piece, components.PlacementData{
		Position: p.Position,
		Rotation: p.Rotation,
	})
	if p.Annotation != "" {
		donburi.Add(piece, components.Annotation, &components.AnnotationData{Text: p.Annotation})
	}

	mode := physics.Dynamic
	if support {
		mode = physics.Static
	}
	h := Engine(ecs).Create(physics.BodyDef{
		Mode:       mode,
		Collider:   layout.Collider(p.Shape),
		Position:   p.Position,
		Rotation:   p.Rotation,
		Density:    Density(p.Material),
		Friction:   cfg.Physics.Friction,
		Elasticity: cfg.Physics.Elasticity,
		Data:       piece.Entity(),
	})
	components.Body.SetValue(piece, components.BodyData{Handle: h})

	return piece
}

// CreateTarget spawns one dynamic objective.
func CreateTarget(ecs *ecs.ECS, structure uuid.UUID, t layout.TargetPlacement) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)

	components.Target.SetValue(target, components.TargetData{Kind: t.Kind, Structure: structure})
	components.Placement.SetValue(target, components.PlacementData{Position: t.Position})
	components.Sprite.SetValue(target, components.SpriteData{Image: assets.Sprite(targetSprite(t.Kind))})

	h := Engine(ecs).Create(physics.BodyDef{
		Mode:       physics.Dynamic,
		Collider:   layout.TargetCollider(t.Kind),
		Position:   t.Position,
		Density:    cfg.Piece.TargetDensity,
		Friction:   cfg.Physics.Friction,
		Elasticity: cfg.Physics.Elasticity,
		Data:       target.Entity(),
	})
	components.Body.SetValue(target, components.BodyData{Handle: h})

	return target
}

// Density returns the body density used for a material.
func Density(m layout.Material) float64 {
	switch m {
	case layout.Steel:
		return cfg.Piece.SteelDensity
	case layout.Wood:
		return cfg.Piece.WoodDensity
	}
	return 0
}

func pieceSprite(s layout.Shape, m layout.Material) string {
	prefix := "block_wood_"
	if m == layout.Steel {
		prefix = "block_stone_"
	}
	switch s {
	case layout.LongBeam, layout.ShortBeam:
		return prefix + "rect.png"
	case layout.Triangle:
		return prefix + "triangle.png"
	}
	return prefix + "square.png"
}

func targetSprite(k layout.TargetKind) string {
	switch k {
	case layout.Boss:
		return "pig_boss.png"
	case layout.RedBird:
		return "bird_red.png"
	case layout.BlueBird:
		return "bird_blue.png"
	case layout.YellowBird:
		return "bird_yellow.png"
	}
	return "pig_green.png"
}
