package pixelfx

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

type fillCall struct {
	x, y, w, h float64
	alpha      float64
}

// recordingSurface keeps the draw calls of the most recent frame.
type recordingSurface struct {
	clears int
	alpha  float64
	fills  []fillCall
}

func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.clears++
	r.fills = r.fills[:0]
}

func (r *recordingSurface) SetFillColor(c color.Color, alpha float64) {
	r.alpha = alpha
}

func (r *recordingSurface) FillRect(x, y, w, h float64) {
	r.fills = append(r.fills, fillCall{x: x, y: y, w: w, h: h, alpha: r.alpha})
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testConfig() Config {
	return Config{
		Width:     100,
		Height:    50,
		PixelSize: 10,
		Duration:  600 * time.Millisecond,
		Rand:      seeded(),
	}
}

func TestNewFieldCount(t *testing.T) {
	tests := []struct {
		w, h, size int
		want       int
	}{
		{100, 50, 10, 50},
		{101, 50, 10, 55},
		{1, 1, 10, 1},
		{1920, 1080, 7, 275 * 155},
		{33, 17, 5, 7 * 4},
	}
	for _, tt := range tests {
		got := len(NewField(tt.w, tt.h, tt.size, seeded()))
		if got != tt.want {
			t.Errorf("NewField(%d, %d, %d) = %d particles, want %d", tt.w, tt.h, tt.size, got, tt.want)
		}
	}
}

func TestNewFieldCoversGrid(t *testing.T) {
	field := NewField(35, 22, 10, seeded())
	seen := map[[2]int]bool{}
	for _, p := range field {
		if p.X%10 != 0 || p.Y%10 != 0 {
			t.Fatalf("particle off grid at (%d, %d)", p.X, p.Y)
		}
		if p.X >= 35 || p.Y >= 22 {
			t.Fatalf("particle outside viewport at (%d, %d)", p.X, p.Y)
		}
		key := [2]int{p.X, p.Y}
		if seen[key] {
			t.Fatalf("duplicate particle at (%d, %d)", p.X, p.Y)
		}
		seen[key] = true
	}
	if len(seen) != 4*3 {
		t.Errorf("expected 12 distinct cells, got %d", len(seen))
	}
}

func TestNewFieldRanges(t *testing.T) {
	for _, p := range NewField(400, 300, 5, seeded()) {
		if p.VX < -4 || p.VX > 4 || p.VY < -4 || p.VY > 4 {
			t.Fatalf("velocity out of range: (%f, %f)", p.VX, p.VY)
		}
		if p.Life < 0.5 || p.Life > 1.0 {
			t.Fatalf("life out of range: %f", p.Life)
		}
	}
}

func TestProgress(t *testing.T) {
	d := 600 * time.Millisecond
	prev := -1.0
	for ms := -100; ms <= 1000; ms += 25 {
		p := Progress(time.Duration(ms)*time.Millisecond, d)
		if p < 0 || p > 1 {
			t.Fatalf("progress(%dms) = %f out of [0,1]", ms, p)
		}
		if p < prev {
			t.Fatalf("progress decreased at %dms: %f < %f", ms, p, prev)
		}
		if ms >= 600 && p != 1 {
			t.Fatalf("progress(%dms) = %f, want exactly 1", ms, p)
		}
		prev = p
	}
	if got := Progress(300*time.Millisecond, d); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("progress at half duration = %f, want 0.5", got)
	}
}

func TestParticleVisibility(t *testing.T) {
	p := Particle{Life: 0.75}
	if _, ok := p.Alpha(1); ok {
		t.Error("particle visible at progress 1")
	}
	a, ok := p.Alpha(0)
	if !ok || math.Abs(a-0.6) > 1e-9 {
		t.Errorf("alpha at progress 0 = %f (%v), want 0.6", a, ok)
	}
	a, ok = p.Alpha(0.5)
	if !ok || math.Abs(a-0.3) > 1e-9 {
		t.Errorf("alpha at progress 0.5 = %f (%v), want 0.3", a, ok)
	}
}

func TestTickAtStartAndEnd(t *testing.T) {
	e := NewEngine()
	start := time.Unix(1000, 0)
	e.Start(start, testConfig())
	particles := e.Particles()

	s := &recordingSurface{}
	if !e.Tick(start, s) {
		t.Fatal("expected another frame at t=0")
	}
	if len(s.fills) != len(particles) {
		t.Fatalf("drew %d squares at t=0, want %d", len(s.fills), len(particles))
	}
	for i, f := range s.fills {
		p := particles[i]
		if math.Abs(f.alpha-0.8*p.Life) > 1e-9 {
			t.Errorf("particle %d alpha = %f, want %f", i, f.alpha, 0.8*p.Life)
		}
		if f.x != float64(p.X) || f.y != float64(p.Y) || f.w != 10 || f.h != 10 {
			t.Errorf("particle %d drawn at (%f, %f, %f, %f)", i, f.x, f.y, f.w, f.h)
		}
	}

	if e.Tick(start.Add(600*time.Millisecond), s) {
		t.Error("expected run to end at t=600ms")
	}
	if len(s.fills) != 0 {
		t.Errorf("drew %d squares at progress 1", len(s.fills))
	}
	if e.Running() {
		t.Error("engine still running after completion")
	}

	clears := s.clears
	e.Tick(start.Add(700*time.Millisecond), s)
	if s.clears != clears {
		t.Error("finished run touched the surface")
	}
}

func TestTickDrift(t *testing.T) {
	e := NewEngine()
	start := time.Unix(0, 0)
	e.Start(start, testConfig())
	p := e.Particles()[3]

	s := &recordingSurface{}
	e.Tick(start.Add(300*time.Millisecond), s)
	f := s.fills[3]
	wantX := float64(p.X) + p.VX*0.5*10
	wantY := float64(p.Y) + p.VY*0.5*10
	if math.Abs(f.x-wantX) > 1e-9 || math.Abs(f.y-wantY) > 1e-9 {
		t.Errorf("drifted to (%f, %f), want (%f, %f)", f.x, f.y, wantX, wantY)
	}
}

func TestTickNeverRewinds(t *testing.T) {
	e := NewEngine()
	start := time.Unix(0, 0)
	e.Start(start, testConfig())
	p := e.Particles()[0]

	s := &recordingSurface{}
	e.Tick(start.Add(400*time.Millisecond), s)
	late := s.fills[0].alpha
	e.Tick(start.Add(100*time.Millisecond), s)
	if s.fills[0].alpha != late {
		t.Errorf("alpha went from %f back to %f", late, s.fills[0].alpha)
	}
	if want, _ := p.Alpha(Progress(400*time.Millisecond, 600*time.Millisecond)); math.Abs(late-want) > 1e-9 {
		t.Errorf("alpha = %f, want %f", late, want)
	}
}

func TestRestartReplacesParticles(t *testing.T) {
	e := NewEngine()
	start := time.Unix(0, 0)
	e.Start(start, testConfig())
	old := e.Particles()

	cfg := testConfig()
	cfg.Width, cfg.Height, cfg.PixelSize = 20, 20, 10
	e.Start(start.Add(100*time.Millisecond), cfg)
	if len(e.Particles()) != 4 {
		t.Fatalf("new run has %d particles, want 4", len(e.Particles()))
	}
	if len(old) == len(e.Particles()) {
		t.Fatal("particle set not replaced")
	}

	s := &recordingSurface{}
	e.Tick(start.Add(100*time.Millisecond), s)
	if len(s.fills) != 4 {
		t.Errorf("tick drew %d squares, want 4 from the new run", len(s.fills))
	}
}

func TestSetActiveEdges(t *testing.T) {
	e := NewEngine()
	now := time.Unix(0, 0)
	cfg := testConfig()

	e.SetActive(false, now, cfg)
	if e.Running() {
		t.Fatal("inactive flag started a run")
	}
	e.SetActive(true, now, cfg)
	if !e.Running() {
		t.Fatal("rising edge did not start a run")
	}
	first := e.Particles()
	e.SetActive(true, now.Add(time.Millisecond), cfg)
	if &e.Particles()[0] != &first[0] {
		t.Error("repeated true restarted the run")
	}

	s := &recordingSurface{}
	e.Tick(now.Add(100*time.Millisecond), s)
	drawn := len(s.fills)
	e.SetActive(false, now.Add(200*time.Millisecond), cfg)
	if e.Running() {
		t.Fatal("falling edge did not stop the run")
	}
	if e.Tick(now.Add(300*time.Millisecond), s) {
		t.Error("stopped run asked for another frame")
	}
	if len(s.fills) != drawn {
		t.Error("stopped run drew again")
	}
}

func TestStartInvalidConfig(t *testing.T) {
	bad := []Config{
		{Width: 10, Height: 10, PixelSize: 0, Duration: time.Second},
		{Width: 10, Height: 10, PixelSize: 5, Duration: 0},
		{Width: 0, Height: 10, PixelSize: 5, Duration: time.Second},
	}
	for _, cfg := range bad {
		e := NewEngine()
		e.Start(time.Unix(0, 0), cfg)
		if e.Running() {
			t.Errorf("invalid config %+v started a run", cfg)
		}
	}

	strict := bad[0]
	strict.Strict = true
	defer func() {
		if recover() == nil {
			t.Error("expected panic in strict mode")
		}
	}()
	NewEngine().Start(time.Unix(0, 0), strict)
}

func TestInvalidStartDiscardsRunningRun(t *testing.T) {
	e := NewEngine()
	start := time.Unix(0, 0)
	e.Start(start, testConfig())
	if !e.Running() {
		t.Fatal("valid config did not start")
	}

	bad := testConfig()
	bad.PixelSize = 0
	e.Start(start.Add(100*time.Millisecond), bad)
	if e.Running() {
		t.Error("old run kept going after an invalid start")
	}
	s := &recordingSurface{}
	if e.Tick(start.Add(200*time.Millisecond), s) || len(s.fills) != 0 {
		t.Error("discarded run still drew")
	}
}

func TestRGBASurface(t *testing.T) {
	e := NewEngine()
	start := time.Unix(0, 0)
	cfg := testConfig()
	cfg.Color = color.NRGBA{R: 24, G: 126, B: 95, A: 255}
	e.Start(start, cfg)

	s := NewRGBASurface(cfg.Width, cfg.Height)
	e.Tick(start, s)
	if _, _, _, a := s.Img.At(5, 5).RGBA(); a == 0 {
		t.Error("expected painted pixel at t=0")
	}

	e.Tick(start.Add(time.Second), s)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if _, _, _, a := s.Img.At(x, y).RGBA(); a != 0 {
				t.Fatalf("pixel (%d, %d) not cleared after completion", x, y)
			}
		}
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(DefaultColor, 0.5)
	if got.A != 102 {
		t.Errorf("alpha = %d, want 102", got.A)
	}
	if got.R != 24 || got.G != 126 || got.B != 95 {
		t.Errorf("color channels changed: %+v", got)
	}
}
