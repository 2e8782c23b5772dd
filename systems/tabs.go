package systems

import (
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/automoto/racrec/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tabUnderlineSeconds = 0.25

// tabRect returns tab i's box in page coordinates.
func tabRect(l *components.LayoutData, n, i int) viewport.Rect {
	w := l.W / float64(n)
	return viewport.Rect{X: l.X + float64(i)*w, Y: l.Y, W: w, H: l.H}
}

// SelectTab activates tab index and shows only the cards of its group.
func SelectTab(e *ecs.ECS, entry *donburi.Entry, index int) {
	t := components.Tabs.Get(entry)
	if index < 0 || index >= len(t.Keys) {
		return
	}
	l := components.Layout.Get(entry)
	if index != t.Active {
		target := float32(tabRect(l, len(t.Keys), index).X - l.X)
		t.UnderlineTween = gween.New(t.Underline, target, tabUnderlineSeconds, ease.OutQuad)
	}
	t.Active = index
	applyTabFilter(e, t.ActiveKey())
}

func applyTabFilter(e *ecs.ECS, key string) {
	components.Card.Each(e.World, func(entry *donburi.Entry) {
		c := components.Card.Get(entry)
		if c.Group == "" {
			return
		}
		c.Hidden = c.Group != key
	})
}

// UpdateTabs switches tabs on click and moves the underline. Run it through
// WithOverlayCheck so covered tabs ignore clicks.
func UpdateTabs(e *ecs.ECS) {
	dt := frameDelta()
	x, y, clickable := PointerOnPage(e)

	components.Tabs.Each(e.World, func(entry *donburi.Entry) {
		t := components.Tabs.Get(entry)
		if t.UnderlineTween != nil {
			v, done := t.UnderlineTween.Update(dt)
			t.Underline = v
			if done {
				t.UnderlineTween = nil
			}
		}
		if !clickable {
			return
		}
		l := components.Layout.Get(entry)
		for i := range t.Keys {
			if tabRect(l, len(t.Keys), i).Contains(x, y) && getOrCreatePointer(e).Click() {
				SelectTab(e, entry, i)
				return
			}
		}
	})
}

// DrawTabs draws tab labels with an underline under the active one.
func DrawTabs(e *ecs.ECS, screen *ebiten.Image) {
	components.Tabs.Each(e.World, func(entry *donburi.Entry) {
		t := components.Tabs.Get(entry)
		l := components.Layout.Get(entry)
		y := ToScreen(e, l.Y)
		if !onScreen(y, l.H) {
			return
		}
		n := len(t.Keys)
		for i, label := range t.Labels {
			r := tabRect(l, n, i)
			clr := cfg.Page.TextColor
			if i == t.Active {
				clr = cfg.Primary
			}
			drawLines(screen, []string{label}, fonts.Bold, clr, components.AlignCenter, r.X, y+(l.H-fonts.Bold.LineHeight())/2-4, r.W, 1)
		}
		if n > 0 {
			w := l.W / float64(n)
			vector.FillRect(screen, float32(l.X)+t.Underline, float32(y+l.H-3), float32(w), 3, cfg.Primary, false)
		}
	})
}
