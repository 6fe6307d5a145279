package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acutrader/acutrader-cli/internal/models"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1575.00", Money(1575))
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$-13.39", Money(-13.39))
	assert.Equal(t, "$157.50", Money(157.5))
}

func TestSignedMoney(t *testing.T) {
	assert.Equal(t, "+$13.39", SignedMoney(13.39))
	assert.Equal(t, "-$13.39", SignedMoney(-13.39))
	assert.Equal(t, "$0.00", SignedMoney(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "+0.85%", Percent(0.85))
	assert.Equal(t, "-1.25%", Percent(-1.25))
	assert.Equal(t, "0.00%", Percent(0))
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.9e12, "2.90T"},
		{3.1e9, "3.10B"},
		{51_000_000, "51.00M"},
		{12_500, "12.50K"},
		{999, "999.00"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compact(tt.in))
	}
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "10", Quantity(10))
	assert.Equal(t, "2.5", Quantity(2.5))
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-02T14:30:00Z", "Jun 02, 2025"},
		{"2025-06-02 14:30:00", "Jun 02, 2025"},
		{"2025-06-02", "Jun 02, 2025"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Date(tt.in))
	}
}

func points(values ...float64) []models.PricePoint {
	pts := make([]models.PricePoint, len(values))
	for i, v := range values {
		pts[i] = models.PricePoint{Value: v}
	}
	return pts
}

func TestSparklineEmpty(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
}

func TestSparklineRising(t *testing.T) {
	got := Sparkline(points(1, 2, 3, 4, 5, 6, 7, 8))
	assert.Equal(t, "▁▂▃▄▅▆▇█", got)
}

func TestSparklineFlat(t *testing.T) {
	got := Sparkline(points(5, 5, 5))
	assert.Equal(t, strings.Repeat("▄", 3), got)
}

func TestSparklineSamplesLongSeries(t *testing.T) {
	values := make([]float64, 90)
	for i := range values {
		values[i] = float64(i)
	}
	got := Sparkline(points(values...))

	runes := []rune(got)
	assert.Len(t, runes, sparklineWidth)
	assert.Equal(t, '▁', runes[0], "sampling keeps the first point")
	assert.Equal(t, '█', runes[len(runes)-1], "sampling keeps the last point")
}
