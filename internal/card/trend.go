// Package card turns extracted profile stats into a rendered SVG stat card:
// decorative trend synthesis, sparkline geometry and template substitution.
package card

import (
	"math"

	"github.com/ritviksingh/thm-card-go/internal/util"
)

// SynthesizeTrend builds a monotonically non-decreasing series of length
// points whose last element equals total. The profile page exposes no real
// history, so the series is purely decorative: a linear ramp ending at the
// current total, rescaled when clamping at zero shifted the endpoint.
func SynthesizeTrend(total, points int) []int {
	points = util.Max(points, 2)

	values := make([]int, points)
	if total <= 0 {
		return values
	}

	base := util.Max(0, total-(points-1))
	for i := range values {
		values[i] = base + i
	}

	if last := values[points-1]; last != total && last != 0 {
		scale := float64(total) / float64(last)
		for i, v := range values {
			values[i] = int(math.Round(float64(v) * scale))
		}
	}

	// Rounding can locally invert the ramp; sweep it back to non-decreasing.
	for i := 1; i < points; i++ {
		if values[i] < values[i-1] {
			values[i] = values[i-1]
		}
	}

	return values
}
