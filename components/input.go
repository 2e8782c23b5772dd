package components

import (
	cfg "github.com/automoto/racrec/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// PointerData is the mouse state in screen coordinates.
type PointerData struct {
	X, Y         float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	WheelY       float64
	Consumed     bool // a click was already handled this frame
}

var Pointer = donburi.NewComponentType[PointerData]()

// Click reports an unconsumed click and marks it consumed.
func (p *PointerData) Click() bool {
	if !p.JustPressed || p.Consumed {
		return false
	}
	p.Consumed = true
	return true
}
