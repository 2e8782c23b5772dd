package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TabsData is a row of tab buttons selecting one card group.
type TabsData struct {
	Keys   []string
	Labels []string
	Active int

	Underline      float32 // x offset of the active marker
	UnderlineTween *gween.Tween
}

var Tabs = donburi.NewComponentType[TabsData]()

// ActiveKey returns the key of the selected tab.
func (t *TabsData) ActiveKey() string {
	if t.Active < 0 || t.Active >= len(t.Keys) {
		return ""
	}
	return t.Keys[t.Active]
}
