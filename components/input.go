package components

import (
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputMouse InputMethod = iota
	InputKeyboard
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the cursor. JustPressed/JustReleased are computed on demand by
// comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	CursorX         float64
	CursorY         float64
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
