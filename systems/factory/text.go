package factory

import (
	"image/color"

	"github.com/automoto/racrec/archetypes"
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHeading creates a centered heading that is shown immediately. It
// returns the entry and the page y below it.
func CreateHeading(ecs *ecs.ECS, s string, font fonts.FontName, y float64) (*donburi.Entry, float64) {
	lines := font.Wrap(s, ContentWidth())
	h := font.LineHeight()*float64(len(lines)) + 8
	heading := archetypes.Heading.Spawn(ecs)
	components.Text.SetValue(heading, components.TextData{
		Lines: lines,
		Font:  font,
		Color: cfg.Page.TitleColor,
		Align: components.AlignCenter,
	})
	components.Layout.SetValue(heading, components.LayoutData{X: ContentLeft(), Y: y, W: ContentWidth(), H: h})
	return heading, y + h
}

// CreateParagraph creates a wrapped text block that fades in when scrolled
// into view. It returns the page y below it.
func CreateParagraph(ecs *ecs.ECS, s string, font fonts.FontName, clr color.Color, align components.TextAlign, x, y, w float64) float64 {
	lines := font.Wrap(s, w)
	h := font.LineHeight()*float64(len(lines)) + 8
	block := archetypes.TextBlock.Spawn(ecs)
	components.Text.SetValue(block, components.TextData{
		Lines: lines,
		Font:  font,
		Color: clr,
		Align: align,
	})
	components.Layout.SetValue(block, components.LayoutData{X: x, Y: y, W: w, H: h})
	return y + h
}

// CreatePanel creates a filled background box.
func CreatePanel(ecs *ecs.ECS, x, y, w, h float64, clr color.Color) *donburi.Entry {
	panel := archetypes.Panel.Spawn(ecs)
	components.Panel.SetValue(panel, components.PanelData{Color: clr})
	components.Layout.SetValue(panel, components.LayoutData{X: x, Y: y, W: w, H: h})
	return panel
}

// CreatePageHeader creates the white title band at the top of a page and
// returns the page y below it.
func CreatePageHeader(ecs *ecs.ECS, title, subtitle string) float64 {
	top := 0.0
	y := top + cfg.Page.SectionGap
	_, y = CreateHeading(ecs, title, fonts.Title, y)
	if subtitle != "" {
		w := ContentWidth() * 0.75
		x := ContentLeft() + (ContentWidth()-w)/2
		y = CreateParagraph(ecs, subtitle, fonts.Body, cfg.Page.TextColor, components.AlignCenter, x, y+8, w)
	}
	y += cfg.Page.SectionGap
	CreatePanel(ecs, 0, top, float64(cfg.C.Width), y-top, cfg.Page.HeaderColor)
	return y
}

// CreateSection creates a heading with a paragraph below it and returns the
// page y below both.
func CreateSection(ecs *ecs.ECS, heading, body string, y float64) float64 {
	_, y = CreateHeading(ecs, heading, fonts.Bold, y)
	w := ContentWidth() * 0.75
	x := ContentLeft() + (ContentWidth()-w)/2
	y = CreateParagraph(ecs, body, fonts.Body, cfg.Page.TextColor, components.AlignCenter, x, y+4, w)
	return y + cfg.Page.SectionGap
}
