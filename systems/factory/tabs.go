package factory

import (
	"github.com/automoto/racrec/archetypes"
	"github.com/automoto/racrec/components"
	"github.com/automoto/racrec/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tabWidth = 200

// CreateTabs creates a centered tab row with the first tab active and
// returns it with the page y below it.
func CreateTabs(ecs *ecs.ECS, keys, labels []string, y float64) (*donburi.Entry, float64) {
	tabs := archetypes.Tabs.Spawn(ecs)
	components.Tabs.SetValue(tabs, components.TabsData{Keys: keys, Labels: labels})
	w := tabWidth * float64(len(keys))
	h := fonts.Bold.LineHeight() + 24
	components.Layout.SetValue(tabs, components.LayoutData{
		X: ContentLeft() + (ContentWidth()-w)/2,
		Y: y,
		W: w,
		H: h,
	})
	return tabs, y + h
}
