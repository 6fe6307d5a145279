// Package render formats AcuTrader data for terminal display.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// Money formats a dollar amount with two fixed decimals, e.g. "$1575.00".
func Money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// SignedMoney prefixes positive amounts with "+".
func SignedMoney(v float64) string {
	if v > 0 {
		return "+" + Money(v)
	}
	if v < 0 {
		return "-" + Money(-v)
	}
	return Money(0)
}

// Percent formats a percentage with two decimals and a sign.
func Percent(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Compact abbreviates large magnitudes: 2.9e12 → "2.90T", 51e6 → "51.00M".
// Values under a thousand print plainly.
func Compact(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// Date formats a ledger timestamp for display, accepting the formats the
// backend emits. Unparseable values pass through unchanged.
func Date(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 02, 2006")
		}
	}
	return s
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

const sparklineWidth = 16

// Sparkline compresses an embedded chart series into a fixed-width unicode
// trend strip. Longer series are sampled evenly; a flat or single-point
// series renders at mid height.
func Sparkline(points []models.PricePoint) string {
	if len(points) == 0 {
		return ""
	}

	values := make([]float64, 0, sparklineWidth)
	if len(points) <= sparklineWidth {
		for _, p := range points {
			values = append(values, p.Value)
		}
	} else {
		step := float64(len(points)-1) / float64(sparklineWidth-1)
		for i := 0; i < sparklineWidth; i++ {
			values = append(values, points[int(float64(i)*step+0.5)].Value)
		}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return strings.Repeat(string(sparkLevels[3]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - min) / (max - min) * float64(len(sparkLevels)-1))
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}

// Quantity drops the trailing decimals whole share counts don't need.
func Quantity(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
