package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw keyboard and mouse bindings into the Input singleton.
// Must run BEFORE any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}
}

// UpdatePointer samples the cursor and launch button, normalized to world
// space through the camera.
func UpdatePointer(ecs *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	btn := cfg.Input.LaunchButton
	SetPointer(ecs, gamemath.V(float64(x), float64(y)),
		inpututil.IsMouseButtonJustPressed(btn),
		ebiten.IsMouseButtonPressed(btn),
		inpututil.IsMouseButtonJustReleased(btn),
	)
}

// SetPointer records a pointer sample given in screen pixels.
func SetPointer(ecs *ecs.ECS, screen gamemath.Vec, pressed, held, released bool) {
	camera := GetOrCreateCamera(ecs)
	pointer := GetOrCreatePointer(ecs)
	*pointer = components.PointerData{
		World:    camera.ToWorld(screen),
		Screen:   screen,
		Pressed:  pressed,
		Held:     held,
		Released: released,
	}
}

// SetPointerWorld records a pointer sample already in world space.
func SetPointerWorld(ecs *ecs.ECS, world gamemath.Vec, pressed, held, released bool) {
	camera := GetOrCreateCamera(ecs)
	pointer := GetOrCreatePointer(ecs)
	*pointer = components.PointerData{
		World:    world,
		Screen:   camera.ToScreen(world),
		Pressed:  pressed,
		Held:     held,
		Released: released,
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
