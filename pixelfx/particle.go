// Package pixelfx implements the pixel dissolve transition: a grid of square
// particles that fade out and drift apart over a fixed duration.
package pixelfx

import "math/rand/v2"

// Drift and fade constants.
const (
	maxVelocity = 4.0  // |vx|, |vy| upper bound
	minLife     = 0.5  // life is uniform in [minLife, minLife+lifeSpread)
	lifeSpread  = 0.5
	driftScale  = 10.0 // pixels of offset per unit velocity at progress 1
	alphaScale  = 0.8
)

// Particle is one square cell of the dissolve grid.
// Only X, Y, VX, VY and Life are stored; alpha and offset are derived per frame.
type Particle struct {
	X, Y   int
	VX, VY float64
	Life   float64
}

// NewField lays particles on every multiple of size from (0,0) while the
// coordinate stays below width/height, column by column.
// The result has ceil(width/size) * ceil(height/size) entries.
func NewField(width, height, size int, rng *rand.Rand) []Particle {
	if width <= 0 || height <= 0 || size <= 0 {
		return nil
	}
	cols := (width + size - 1) / size
	rows := (height + size - 1) / size
	field := make([]Particle, 0, cols*rows)
	for x := 0; x < width; x += size {
		for y := 0; y < height; y += size {
			field = append(field, Particle{
				X:    x,
				Y:    y,
				VX:   (randFloat(rng) - 0.5) * 2 * maxVelocity,
				VY:   (randFloat(rng) - 0.5) * 2 * maxVelocity,
				Life: randFloat(rng)*lifeSpread + minLife,
			})
		}
	}
	return field
}

// Alpha returns the paint opacity of p at the given progress and whether the
// particle is visible at all.
func (p Particle) Alpha(progress float64) (float64, bool) {
	current := p.Life * (1 - progress)
	if current <= 0 {
		return 0, false
	}
	return current * alphaScale, true
}

// Offset returns the drawn top-left corner of p at the given progress.
func (p Particle) Offset(progress float64) (x, y float64) {
	return float64(p.X) + p.VX*progress*driftScale,
		float64(p.Y) + p.VY*progress*driftScale
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}
