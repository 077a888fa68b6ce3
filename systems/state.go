package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreate returns the singleton of type T, creating it with initial if it
// does not exist yet.
func getOrCreate[T any](ecs *ecs.ECS, ct *donburi.ComponentType[T], initial T) *T {
	entry, ok := ct.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(ct))
		ct.SetValue(entry, initial)
	}
	return ct.Get(entry)
}

func GetOrCreateDrag(ecs *ecs.ECS) *components.DragData {
	return getOrCreate(ecs, components.Drag, components.DragData{})
}

// GetOrCreateRespawn returns the respawn countdown, starting full.
func GetOrCreateRespawn(ecs *ecs.ECS) *components.RespawnData {
	start := components.RespawnData{Remaining: cfg.Respawn.Delay}
	if len(cfg.Respawn.FlavorText) > 0 {
		start.Flavor = cfg.Respawn.FlavorText[0]
	}
	return getOrCreate(ecs, components.Respawn, start)
}

func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	return getOrCreate(ecs, components.Clock, components.ClockData{})
}

func GetOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	return getOrCreate(ecs, components.Pointer, components.PointerData{})
}

func GetOrCreateHud(ecs *ecs.ECS) *components.HudData {
	return getOrCreate(ecs, components.Hud, components.HudData{Hover: cfg.UI.DefaultPrompt})
}

func GetOrCreateResetRequest(ecs *ecs.ECS) *components.ResetRequestData {
	return getOrCreate(ecs, components.ResetRequest, components.ResetRequestData{})
}

func GetOrCreateScore(ecs *ecs.ECS) *components.ScoreData {
	return getOrCreate(ecs, components.Score, components.ScoreData{})
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	return getOrCreate(ecs, components.Settings, components.SettingsData{Overlay: cfg.Debug.Overlay})
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreate(ecs, components.Input, components.InputData{})
}

// GetOrCreateCamera returns the camera, sized to the configured screen.
func GetOrCreateCamera(ecs *ecs.ECS) *components.CameraData {
	return getOrCreate(ecs, components.Camera, components.CameraData{
		Zoom:   cfg.C.Zoom,
		Width:  cfg.C.Width,
		Height: cfg.C.Height,
	})
}
