package card

import (
	"fmt"
	"math"
	"strings"

	"github.com/ritviksingh/thm-card-go/internal/domain"
)

// SparkPoints maps a trend series onto a w-by-h polyline canvas. Values are
// normalized by the series maximum (an all-zero series normalizes by 1 to
// avoid dividing by zero) and larger values plot higher, i.e. at smaller y.
func SparkPoints(trend []int, w, h int) []domain.SparkPoint {
	points := make([]domain.SparkPoint, len(trend))
	if len(trend) == 0 {
		return points
	}

	maxValue := 0
	for _, v := range trend {
		if v > maxValue {
			maxValue = v
		}
	}
	denom := float64(maxValue)
	if maxValue == 0 {
		denom = 1
	}

	n := len(trend)
	for i, v := range trend {
		x := 0
		if n > 1 {
			x = int(math.Round(float64(i) / float64(n-1) * float64(w)))
		}
		norm := float64(v) / denom
		y := int(math.Round((1 - norm) * float64(h)))
		points[i] = domain.SparkPoint{X: x, Y: y}
	}

	return points
}

// FormatPoints serializes points as the space-separated "x,y" list an SVG
// polyline expects.
func FormatPoints(points []domain.SparkPoint) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
