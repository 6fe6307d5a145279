// Package chart prepares historical bar data and renders it to PNG.
package chart

import (
	"sort"
	"time"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// IndicatorSeries is one indicator's points, filtered to the dates where the
// backend supplied a value. Series may be shorter than the bar series; gaps
// are expected, not an error.
type IndicatorSeries struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// Prepared is a render-ready dataset: bars sorted ascending by date plus the
// per-indicator series extracted from them.
type Prepared struct {
	Bars       []models.Bar
	Indicators []IndicatorSeries
}

// Prepare sorts bars ascending by date, drops bars without a date and filters
// each indicator series independently. Upstream ordering is not guaranteed.
func Prepare(bars []models.Bar) *Prepared {
	sorted := make([]models.Bar, 0, len(bars))
	for _, b := range bars {
		if b.Date.IsZero() {
			continue
		}
		sorted = append(sorted, b)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	p := &Prepared{Bars: sorted}
	for _, def := range []struct {
		name string
		pick func(*models.BarIndicators) *float64
	}{
		{"SMA 20", func(ind *models.BarIndicators) *float64 { return ind.SMA20 }},
		{"EMA 12", func(ind *models.BarIndicators) *float64 { return ind.EMA12 }},
		{"BB Upper", func(ind *models.BarIndicators) *float64 { return ind.BBUpper }},
		{"BB Lower", func(ind *models.BarIndicators) *float64 { return ind.BBLower }},
	} {
		series := IndicatorSeries{Name: def.name}
		for _, b := range sorted {
			if b.Indicators == nil {
				continue
			}
			if v := def.pick(b.Indicators); v != nil {
				series.Dates = append(series.Dates, b.Date)
				series.Values = append(series.Values, *v)
			}
		}
		if len(series.Dates) > 0 {
			p.Indicators = append(p.Indicators, series)
		}
	}

	return p
}
