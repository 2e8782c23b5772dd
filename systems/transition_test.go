package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/racrec/config"
)

// fakeClock replaces Now for the duration of a test.
func fakeClock(t *testing.T) *time.Time {
	t.Helper()
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	prev := Now
	Now = func() time.Time { return now }
	t.Cleanup(func() { Now = prev })
	return &now
}

func TestTriggerPixelTransitionTimesOut(t *testing.T) {
	clock := fakeClock(t)
	e := newTestECS()

	TriggerPixelTransition(e, 12, 500*time.Millisecond)
	UpdatePixelTransition(e)

	pt := GetOrCreatePixelTransition(e)
	if !pt.Active || !pt.Engine.Running() {
		t.Fatal("transition should be running after trigger")
	}
	rc, _ := pt.Engine.Context()
	if rc.PixelSize != 12 || rc.Duration != 500*time.Millisecond {
		t.Errorf("run context = %+v", rc)
	}
	if rc.Width != cfg.C.Width || rc.Height != cfg.C.Height {
		t.Errorf("viewport = %dx%d, want %dx%d", rc.Width, rc.Height, cfg.C.Width, cfg.C.Height)
	}

	*clock = clock.Add(400 * time.Millisecond)
	UpdatePixelTransition(e)
	if !pt.Active {
		t.Fatal("flag dropped before its duration")
	}

	*clock = clock.Add(100 * time.Millisecond)
	UpdatePixelTransition(e)
	if pt.Active {
		t.Error("flag should drop once the duration has passed")
	}
	if pt.Engine.Running() {
		t.Error("engine should stop when the flag drops")
	}
}

func TestTriggerWhileActiveRestarts(t *testing.T) {
	clock := fakeClock(t)
	e := newTestECS()

	TriggerPixelTransition(e, 10, time.Second)
	UpdatePixelTransition(e)
	pt := GetOrCreatePixelTransition(e)
	first := pt.Engine.Particles()

	*clock = clock.Add(300 * time.Millisecond)
	TriggerPixelTransition(e, 20, time.Second)
	UpdatePixelTransition(e)

	rc, ok := pt.Engine.Context()
	if !ok {
		t.Fatal("engine not running after retrigger")
	}
	if rc.PixelSize != 20 {
		t.Errorf("pixel size = %d, want 20", rc.PixelSize)
	}
	if !rc.Start.Equal(*clock) {
		t.Errorf("run start = %v, want %v", rc.Start, *clock)
	}
	if len(first) == len(pt.Engine.Particles()) {
		t.Error("expected a new particle field for the new pixel size")
	}
	if want := clock.Add(time.Second); !pt.DeactivateAt.Equal(want) {
		t.Errorf("deactivate at %v, want %v", pt.DeactivateAt, want)
	}
}

func TestSetPixelTransitionActiveHolds(t *testing.T) {
	clock := fakeClock(t)
	e := newTestECS()

	SetPixelTransitionActive(e, true)
	UpdatePixelTransition(e)
	pt := GetOrCreatePixelTransition(e)
	if !pt.Engine.Running() {
		t.Fatal("engine should start on the rising edge")
	}

	*clock = clock.Add(time.Hour)
	UpdatePixelTransition(e)
	if !pt.Active {
		t.Error("a directly set flag must stay up until cleared")
	}

	SetPixelTransitionActive(e, false)
	UpdatePixelTransition(e)
	if pt.Engine.Running() {
		t.Error("engine should stop on the falling edge")
	}
}
