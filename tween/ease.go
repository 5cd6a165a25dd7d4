package tween

import (
	"math"

	"github.com/tanema/gween/ease"
)

// ElasticOut returns an elastic ease-out with the given amplitude and period
// (period is a fraction of the tween duration). The curve starts at the
// begin value, overshoots around the end value and settles on it exactly.
func ElasticOut(amplitude, period float64) ease.TweenFunc {
	if amplitude <= 0 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	p1 := math.Max(amplitude, 1)
	p2 := period / math.Min(amplitude, 1)
	phase := p2 / (2 * math.Pi) * math.Asin(1/p1)
	omega := 2 * math.Pi / p2

	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		if t <= 0 {
			return b
		}
		p := float64(t / d)
		v := p1*math.Pow(2, -10*p)*math.Sin((p-phase)*omega) + 1
		return b + c*float32(v)
	}
}
