package systems

import (
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard, gamepads and cursor into the Input singleton.
// Runs first so every later system sees this tick's actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	pollKeys(input)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			pollGamepad(input, id)
		}
	}

	input.CursorX, input.CursorY = ebiten.CursorPosition()
}

func pollKeys(input *components.InputData) {
	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				break
			}
		}
	}
}

// pollGamepad reads the bound buttons and folds the left stick into the
// move actions. Stick up is negative on the vertical axis.
func pollGamepad(input *components.InputData, id ebiten.GamepadID) {
	for action, binding := range cfg.Input.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				input.Current[action] = true
				break
			}
		}
	}

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	applyStick(input, x, y, cfg.Input.AnalogDeadzone)
}

func applyStick(input *components.InputData, x, y, deadzone float64) {
	switch {
	case x < -deadzone:
		input.Current[cfg.ActionMoveLeft] = true
	case x > deadzone:
		input.Current[cfg.ActionMoveRight] = true
	}
	switch {
	case y < -deadzone:
		input.Current[cfg.ActionMoveUp] = true
	case y > deadzone:
		input.Current[cfg.ActionMoveDown] = true
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the edge state of an action from the two frames.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr, prev := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
