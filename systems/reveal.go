package systems

import (
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/viewport"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// observeReveal hides entry until it first scrolls into view, then lets
// UpdateReveals fade it up into place after its delay.
func observeReveal(e *ecs.ECS, entry *donburi.Entry) {
	r := components.Reveal.Get(entry)
	r.Offset = float32(cfg.Reveal.Offset)
	r.Alpha = 0
	r.Handle = GetOrCreateObserver(e).Observe(components.Layout.Get(entry).Rect(), viewport.Callbacks{
		OnEnter: func() {
			if !entry.Valid() {
				return
			}
			r := components.Reveal.Get(entry)
			r.Started = true
			r.Waiting = r.Delay
		},
	}, true)
}

// UpdateReveals registers new entries with the observer and advances
// fade-ins of entries that have been seen.
func UpdateReveals(e *ecs.ECS) {
	dt := frameDelta()
	components.Reveal.Each(e.World, func(entry *donburi.Entry) {
		r := components.Reveal.Get(entry)
		if r.Handle == 0 && !r.Started {
			observeReveal(e, entry)
			return
		}
		stepReveal(r, dt)
	})
}

func stepReveal(r *components.RevealData, dt float32) {
	if !r.Started || r.Alpha >= 1 {
		return
	}
	if r.Tween == nil {
		r.Waiting -= dt
		if r.Waiting > 0 {
			return
		}
		r.Tween = gween.New(0, 1, cfg.Reveal.Duration, ease.OutQuad)
	}
	v, done := r.Tween.Update(dt)
	if done {
		v = 1
	}
	r.Alpha = v
	r.Offset = float32(cfg.Reveal.Offset) * (1 - v)
}

// revealState returns the opacity and downward offset to draw entry with.
func revealState(entry *donburi.Entry) (float32, float64) {
	if !entry.HasComponent(components.Reveal) {
		return 1, 0
	}
	r := components.Reveal.Get(entry)
	return r.Alpha, float64(r.Offset)
}
