package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical site action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionNavPrev
	ActionNavNext
	ActionClose
	ActionTrigger
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	ScrollStep     float64 // pixels per held frame of arrow scrolling
	WheelStep      float64 // pixels per wheel notch
	PageStepFactor float64 // fraction of the viewport moved by page up/down
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ScrollStep:     8,
		WheelStep:      40,
		PageStepFactor: 0.9,
		Bindings: map[ActionID]InputBinding{
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionPageUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
			},
			ActionPageDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown, ebiten.KeySpace},
			},
			ActionNavPrev: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionNavNext: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionClose: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionTrigger: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyT},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
