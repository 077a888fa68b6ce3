package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/layout"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateLevel records the layout for index without building it.
func CreateLevel(ecs *ecs.ECS, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	l := layout.Generate(index)
	components.Level.SetValue(level, components.LevelData{
		Index:       index,
		Layout:      l,
		Fingerprint: l.Fingerprint(),
	})
	return level
}

// Instantiate creates one live entity per placement of l and returns the id
// shared by all of them.
func Instantiate(ecs *ecs.ECS, l layout.Layout) uuid.UUID {
	structure := uuid.New()
	for _, p := range l.Pieces {
		CreatePiece(ecs, structure, p)
	}
	for _, t := range l.Targets {
		CreateTarget(ecs, structure, t)
	}
	zap.L().Debug("structure instantiated",
		zap.String("layout", l.Name),
		zap.Stringer("structure", structure),
		zap.Int("pieces", len(l.Pieces)),
		zap.Int("targets", len(l.Targets)),
	)
	return structure
}
