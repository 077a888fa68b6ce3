package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/layout"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the current level, or nil before CreateLevel.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// StartLevel builds level index into an empty world: its structure and a
// fresh projectile.
func StartLevel(ecs *ecs.ECS, index int) {
	level := GetLevel(ecs)
	if level == nil {
		level = components.Level.Get(factory.CreateLevel(ecs, index))
	}
	setLevel(level, index)
	ResetLevel(ecs)
}

// ChangeLevel moves delta levels forward, wrapping, and rebuilds.
func ChangeLevel(ecs *ecs.ECS, delta int) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	setLevel(level, level.Index+delta)
	ResetLevel(ecs)

	settings := GetOrCreateSettings(ecs)
	settings.LastLevel = level.Index
	SaveCurrentSettings(settings)
}

func setLevel(level *components.LevelData, index int) {
	n := layout.Count()
	index = ((index % n) + n) % n
	level.Index = index
	level.Layout = layout.Generate(index)
	level.Fingerprint = level.Layout.Fingerprint()
}
