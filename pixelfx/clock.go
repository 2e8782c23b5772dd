package pixelfx

import "time"

// Progress maps elapsed time onto [0, 1] against duration.
// It is exactly 1 once elapsed >= duration and never negative.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}

// Seconds converts a duration given in (possibly fractional) seconds.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
