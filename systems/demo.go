package systems

import (
	"math"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/pixelfx"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDemo returns the pixel demo settings, seeded from saved values.
func GetOrCreateDemo(e *ecs.ECS) *components.DemoData {
	entry, ok := components.Demo.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Demo))
		d := components.DemoData{
			PixelSize: cfg.Transition.PixelSize,
			Duration:  cfg.Transition.Duration,
		}
		if saved := savedDemo; saved != nil {
			d.PixelSize = saved.PixelSize
			d.Duration = saved.Duration
		}
		d.PixelSize = clampPixelSize(d.PixelSize)
		d.Duration = clampDuration(d.Duration)
		components.Demo.SetValue(entry, d)
	}
	return components.Demo.Get(entry)
}

func clampPixelSize(v int) int {
	return max(cfg.Demo.MinPixelSize, min(cfg.Demo.MaxPixelSize, v))
}

// clampDuration snaps v to the slider's step and range.
func clampDuration(v float64) float64 {
	step := cfg.Demo.DurationStep
	v = math.Round(v/step) * step
	v = math.Round(v*10) / 10
	return math.Max(cfg.Demo.MinDuration, math.Min(cfg.Demo.MaxDuration, v))
}

// AdjustDemoPixelSize moves the pixel size by steps slider steps.
func AdjustDemoPixelSize(e *ecs.ECS, steps int) {
	d := GetOrCreateDemo(e)
	v := clampPixelSize(d.PixelSize + steps*cfg.Demo.PixelSizeStep)
	if v != d.PixelSize {
		d.PixelSize = v
		d.Dirty = true
	}
}

// AdjustDemoDuration moves the duration by steps slider steps.
func AdjustDemoDuration(e *ecs.ECS, steps int) {
	d := GetOrCreateDemo(e)
	v := clampDuration(d.Duration + float64(steps)*cfg.Demo.DurationStep)
	if v != d.Duration {
		d.Duration = v
		d.Dirty = true
	}
}

// TriggerDemo plays the dissolve with the chosen settings. The flag drops
// again after the chosen duration.
func TriggerDemo(e *ecs.ECS) {
	d := GetOrCreateDemo(e)
	TriggerPixelTransition(e, d.PixelSize, pixelfx.Seconds(d.Duration))
}

// UpdateDemo handles the keyboard shortcut and saves changed settings.
func UpdateDemo(e *ecs.ECS) {
	d := GetOrCreateDemo(e)
	if GetAction(getOrCreateInput(e), cfg.ActionTrigger).JustPressed && !OverlayOpen(e) {
		TriggerDemo(e)
	}
	if d.Dirty {
		d.Dirty = false
		SaveDemoSettings(d)
	}
}
