package systems

import (
	"fmt"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/automoto/racrec/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// observeCounter registers a counter's box with the page observer.
func observeCounter(e *ecs.ECS, entry *donburi.Entry) {
	layout := components.Layout.Get(entry)
	counter := components.Counter.Get(entry)
	counter.Handle = GetOrCreateObserver(e).Observe(layout.Rect(), viewport.Callbacks{
		OnEnter: func() { counterEnter(entry) },
		OnLeave: func() { counterLeave(entry) },
	}, false)
}

func counterEnter(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	c := components.Counter.Get(entry)
	c.InView = true
	if c.Tween != nil {
		return
	}
	c.Waiting = c.Delay
	if c.Waiting <= 0 {
		startCount(c)
	}
}

func counterLeave(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	c := components.Counter.Get(entry)
	c.InView = false
}

func startCount(c *components.CounterData) {
	c.Waiting = 0
	c.Tween = gween.New(0, float32(c.End), cfg.Counter.Duration, ease.OutCubic)
}

// UpdateCounters runs pending delays and count-up tweens.
// A counter counts once; leaving the view keeps the reached value.
func UpdateCounters(e *ecs.ECS) {
	dt := frameDelta()
	components.Counter.Each(e.World, func(entry *donburi.Entry) {
		c := components.Counter.Get(entry)
		if c.Handle == 0 {
			observeCounter(e, entry)
			return
		}
		stepCounter(c, dt)
	})
}

func stepCounter(c *components.CounterData, dt float32) {
	if c.Tween == nil {
		// The delay only runs while the counter is on screen.
		if !c.InView || c.Waiting <= 0 {
			return
		}
		c.Waiting -= dt
		if c.Waiting <= 0 {
			startCount(c)
		}
		return
	}
	if c.Value >= float32(c.End) {
		return
	}
	v, done := c.Tween.Update(dt)
	c.Value = v
	if done {
		c.Value = float32(c.End)
	}
}

// DrawCounters draws each counter's number and label.
func DrawCounters(e *ecs.ECS, screen *ebiten.Image) {
	numFace := fonts.Title.Get()
	labelFace := fonts.Body.Get()
	components.Counter.Each(e.World, func(entry *donburi.Entry) {
		c := components.Counter.Get(entry)
		l := components.Layout.Get(entry)
		y := ToScreen(e, l.Y)
		if y+l.H < 0 || y > float64(cfg.C.Height) {
			return
		}

		num := fmt.Sprintf("%d%s", c.Display(), c.Suffix)
		nx := l.X + (l.W-fonts.Title.Measure(num))/2
		text.Draw(screen, num, numFace, int(nx), int(y+fonts.Title.LineHeight()), cfg.Counter.Color)

		lx := l.X + (l.W-fonts.Body.Measure(c.Label))/2
		text.Draw(screen, c.Label, labelFace, int(lx), int(y+l.H-8), cfg.Page.TextColor)
	})
}
