package systems

import (
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw keyboard, gamepad and mouse state.
// Must run BEFORE every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	pointer := getOrCreatePointer(ecs)
	moved := float64(cx) != pointer.X || float64(cy) != pointer.Y
	applyPointer(pointer, float64(cx), float64(cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), wheelY)

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case moved || pointer.Pressed:
		input.LastInputMethod = components.InputMouse
	}
}

// applyPointer advances the pointer state by one frame.
func applyPointer(p *components.PointerData, x, y float64, pressed bool, wheelY float64) {
	p.JustPressed = pressed && !p.Pressed
	p.JustReleased = !pressed && p.Pressed
	p.Pressed = pressed
	p.X, p.Y = x, y
	p.WheelY = wheelY
	p.Consumed = false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// getOrCreatePointer returns the singleton Pointer component, creating if needed
func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
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
