package factory

import (
	"github.com/automoto/racrec/archetypes"
	"github.com/automoto/racrec/assets"
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCounter creates a counter that counts up to s.End once seen.
func CreateCounter(ecs *ecs.ECS, s assets.Stat, x, y, w float64) *donburi.Entry {
	counter := archetypes.Counter.Spawn(ecs)
	components.Counter.SetValue(counter, components.CounterData{
		End:    s.End,
		Delay:  s.Delay,
		Suffix: s.Suffix,
		Label:  s.Label,
	})
	h := fonts.Title.LineHeight() + fonts.Body.LineHeight() + 16
	components.Layout.SetValue(counter, components.LayoutData{X: x, Y: y, W: w, H: h})
	return counter
}

// CreateCounterRow spreads stats evenly across the content width on a white
// band and returns the page y below it.
func CreateCounterRow(ecs *ecs.ECS, stats []assets.Stat, y float64) float64 {
	if len(stats) == 0 {
		return y
	}
	w := ContentWidth() / float64(len(stats))
	top := y
	y += cfg.Page.SectionGap / 2
	var h float64
	for i, s := range stats {
		c := CreateCounter(ecs, s, ContentLeft()+float64(i)*w, y, w)
		h = components.Layout.Get(c).H
	}
	bottom := y + h + cfg.Page.SectionGap/2
	CreatePanel(ecs, 0, top, float64(cfg.C.Width), bottom-top, cfg.Page.HeaderColor)
	return bottom + cfg.Page.SectionGap
}
