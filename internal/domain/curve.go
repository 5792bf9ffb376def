package domain

import (
	"math"
	"time"
)

// Curve boundaries, expressed as fractions of the total duration.
const (
	rampEnd     = 0.5
	plateauEnd  = 0.85
	rampPercent = 80.0
	finalStart  = 85.0
)

// Curve maps elapsed time within a run of length total to a progress percentage.
//
// The shape is a fast ramp to 80% over the first half, a jittering plateau around
// 80% until 85% of the duration, then a linear climb from 85% to 100%.
// It is pure and never returns a value outside [0, 100].
func Curve(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 100
	}
	if elapsed <= 0 {
		return 0
	}

	e := float64(elapsed)
	t := float64(total)

	switch {
	case e < rampEnd*t:
		return e / (rampEnd * t) * rampPercent
	case e < plateauEnd*t:
		p := (e - rampEnd*t) / ((plateauEnd - rampEnd) * t)
		return rampPercent + math.Sin(p*4*math.Pi)*2
	default:
		p := (e - plateauEnd*t) / ((1 - plateauEnd) * t)
		return math.Min(finalStart+p*15, 100)
	}
}

// ClampProgress bounds next to [prev, 100] so published progress never regresses.
func ClampProgress(prev, next float64) float64 {
	if next < prev {
		next = prev
	}
	if next > 100 {
		return 100
	}
	if next < 0 {
		return 0
	}
	return next
}
