package pixelfx

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"
)

// DefaultColor is the fill color of the dissolve squares.
var DefaultColor = color.NRGBA{R: 24, G: 126, B: 95, A: 204}

// Config describes one run. Width and Height are the viewport in pixels,
// read once when the run starts.
type Config struct {
	Width, Height int
	PixelSize     int
	Duration      time.Duration
	Color         color.Color

	// Rand overrides the random source used for particle generation.
	Rand *rand.Rand

	// Strict makes Start panic on an invalid Config instead of ignoring it.
	Strict bool
}

// Validate reports why c cannot start a run.
func (c Config) Validate() error {
	switch {
	case c.PixelSize <= 0:
		return fmt.Errorf("pixel size must be positive, got %d", c.PixelSize)
	case c.Duration <= 0:
		return fmt.Errorf("duration must be positive, got %s", c.Duration)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// RunContext is the immutable per-run record handed to every frame.
type RunContext struct {
	Width, Height int
	PixelSize     int
	Duration      time.Duration
	Color         color.Color
	Start         time.Time
}

// Progress returns the run's progress at now.
func (rc RunContext) Progress(now time.Time) float64 {
	return Progress(now.Sub(rc.Start), rc.Duration)
}

type run struct {
	ctx       RunContext
	particles []Particle
	progress  float64 // last drawn progress
}

// Engine owns at most one run at a time.
type Engine struct {
	run    *run
	active bool // last observed value of the activation flag
}

func NewEngine() *Engine {
	return &Engine{}
}

// Start begins a fresh run at now, discarding any run in progress. An
// invalid cfg still discards the old run.
func (e *Engine) Start(now time.Time, cfg Config) {
	if err := cfg.Validate(); err != nil {
		if cfg.Strict {
			panic("pixelfx: " + err.Error())
		}
		e.run = nil
		return
	}
	clr := cfg.Color
	if clr == nil {
		clr = DefaultColor
	}
	e.run = &run{
		ctx: RunContext{
			Width:     cfg.Width,
			Height:    cfg.Height,
			PixelSize: cfg.PixelSize,
			Duration:  cfg.Duration,
			Color:     clr,
			Start:     now,
		},
		particles: NewField(cfg.Width, cfg.Height, cfg.PixelSize, cfg.Rand),
	}
}

// Stop ends the current run without drawing. The surface keeps whatever the
// last frame left on it.
func (e *Engine) Stop() {
	e.run = nil
}

// SetActive feeds the external activation flag. A false->true edge starts a
// run, a true->false edge stops it; repeated values are ignored.
func (e *Engine) SetActive(active bool, now time.Time, cfg Config) {
	if active == e.active {
		return
	}
	e.active = active
	if active {
		e.Start(now, cfg)
		return
	}
	e.Stop()
}

// Running reports whether a run still wants frames.
func (e *Engine) Running() bool {
	return e.run != nil
}

// Context returns the current run's context.
func (e *Engine) Context() (RunContext, bool) {
	if e.run == nil {
		return RunContext{}, false
	}
	return e.run.ctx, true
}

// Particles returns the current run's particle set. Callers must not modify it.
func (e *Engine) Particles() []Particle {
	if e.run == nil {
		return nil
	}
	return e.run.particles
}

// Tick draws the frame for now onto s and reports whether another frame is
// wanted. Progress never moves backwards across ticks of the same run.
// The tick that reaches progress 1 clears the surface and ends the run.
func (e *Engine) Tick(now time.Time, s Surface) bool {
	r := e.run
	if r == nil {
		return false
	}
	progress := r.ctx.Progress(now)
	if progress < r.progress {
		progress = r.progress
	}
	r.progress = progress

	DrawFrame(r.ctx, r.particles, progress, s)

	if progress >= 1 {
		e.run = nil
		return false
	}
	return true
}

// DrawFrame clears the whole viewport and paints every visible particle.
func DrawFrame(ctx RunContext, particles []Particle, progress float64, s Surface) {
	s.ClearRect(0, 0, float64(ctx.Width), float64(ctx.Height))
	size := float64(ctx.PixelSize)
	for _, p := range particles {
		alpha, ok := p.Alpha(progress)
		if !ok {
			continue
		}
		x, y := p.Offset(progress)
		s.SetFillColor(ctx.Color, alpha)
		s.FillRect(x, y, size, size)
	}
}
