package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionCancel
	ActionSelect
	ActionToggleDebug
	ActionFullscreen
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Horizontal cursor speed when steering with a gamepad stick, in pixels
	// per frame at full deflection.
	StickSpeed     float64
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		StickSpeed:     12,
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionCancel: {
				Keys:         []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionSelect: {
				Keys:         []ebiten.Key{ebiten.KeyEnter},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
		},
	}
}
