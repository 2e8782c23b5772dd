package components

import (
	"image/color"

	"github.com/automoto/racrec/fonts"
	"github.com/yohamta/donburi"
)

// TextAlign controls horizontal placement inside the layout box
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// TextData is a block of pre-wrapped lines.
type TextData struct {
	Lines []string
	Font  fonts.FontName
	Color color.Color
	Align TextAlign
}

var Text = donburi.NewComponentType[TextData]()

// PanelData is a filled background box.
type PanelData struct {
	Color color.Color
}

var Panel = donburi.NewComponentType[PanelData]()
