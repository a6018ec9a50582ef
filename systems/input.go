package systems

import (
	"math"

	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Last raw mouse position, so a still mouse doesn't undo stick steering.
var lastMouseX, lastMouseY = -1, -1

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE every other system in the order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, mouseUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				mouseUsed = true
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

	mx, my := ebiten.CursorPosition()
	if mx != lastMouseX || my != lastMouseY {
		lastMouseX, lastMouseY = mx, my
		input.CursorX, input.CursorY = float64(mx), float64(my)
		mouseUsed = true
	}

	if dx := getStickDeflection(gamepadIDs); dx != 0 {
		input.CursorX += dx * cfg.Input.StickSpeed
		gamepadUsed = true
	}
	input.CursorX = gamemath.Clamp(input.CursorX, 0, float64(cfg.C.Width))

	// Gamepad takes priority, then mouse
	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// getStickDeflection returns the strongest horizontal left-stick value past
// the deadzone across all gamepads, or 0.
func getStickDeflection(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	var best float64

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h > -deadzone && h < deadzone {
			continue
		}
		if math.Abs(h) > math.Abs(best) {
			best = h
		}
	}
	return best
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
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
