package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var indicatorColors = map[string]string{
	"SMA 20":   "f59e0b", // amber-500
	"EMA 12":   "8b5cf6", // violet-500
	"BB Upper": "9ca3af", // gray-400
	"BB Lower": "9ca3af",
}

// RenderPNG renders a prepared dataset as a PNG price chart: close-price line
// with a high/low envelope, indicator overlays where their series have points.
// The axis range is derived from the dataset, so replacing the period's data
// refits the visible range.
func RenderPNG(symbol string, p *Prepared) ([]byte, error) {
	if len(p.Bars) < 2 {
		return nil, fmt.Errorf("need at least 2 bars, got %d", len(p.Bars))
	}

	dates := make([]time.Time, len(p.Bars))
	closes := make([]float64, len(p.Bars))
	highs := make([]float64, len(p.Bars))
	lows := make([]float64, len(p.Bars))
	for i, b := range p.Bars {
		dates[i] = b.Date
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name: "High",
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex("d1d5db"), // gray-300
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{2.0, 2.0},
			},
			XValues: dates,
			YValues: highs,
		},
		chart.TimeSeries{
			Name: "Low",
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex("d1d5db"),
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{2.0, 2.0},
			},
			XValues: dates,
			YValues: lows,
		},
		chart.TimeSeries{
			Name: "Close",
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
				StrokeWidth: 2.5,
			},
			XValues: dates,
			YValues: closes,
		},
	}

	for _, ind := range p.Indicators {
		// go-chart cannot draw a single-point line
		if len(ind.Dates) < 2 {
			continue
		}
		color := indicatorColors[ind.Name]
		if color == "" {
			color = "6b7280"
		}
		series = append(series, chart.TimeSeries{
			Name: ind.Name,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(color),
				StrokeWidth: 1.5,
			},
			XValues: ind.Dates,
			YValues: ind.Values,
		})
	}

	graph := chart.Chart{
		Title:  symbol,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
