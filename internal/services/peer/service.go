package peer

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// List returns all peers.
func List() []models.Peer {
	return peers
}

// Get returns a peer by id.
func Get(id string) (*models.Peer, error) {
	for i := range peers {
		if peers[i].ID == id {
			return &peers[i], nil
		}
	}
	return nil, fmt.Errorf("unknown peer %q", id)
}

// Compare aligns the user's performance history with a peer's, month by month.
// Months the peer has no value for are emitted with a nil peer value so the
// chart shows a gap rather than a fabricated point.
func Compare(peer *models.Peer) []models.PeerComparisonPoint {
	peerByMonth := make(map[string]float64, len(peer.PerformanceHistory))
	for _, p := range peer.PerformanceHistory {
		peerByMonth[p.Month] = p.Value
	}

	points := make([]models.PeerComparisonPoint, 0, len(userPerformanceHistory))
	for _, u := range userPerformanceHistory {
		point := models.PeerComparisonPoint{Month: u.Month, UserValue: u.Value}
		if v, ok := peerByMonth[u.Month]; ok {
			point.PeerValue = &v
		}
		points = append(points, point)
	}
	return points
}

// RenderComparisonPNG renders the user-vs-peer performance chart.
func RenderComparisonPNG(peer *models.Peer, points []models.PeerComparisonPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	userX := make([]float64, len(points))
	userY := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	var peerX, peerY []float64

	for i, p := range points {
		x := float64(i)
		userX[i] = x
		userY[i] = p.UserValue
		ticks[i] = chart.Tick{Value: x, Label: p.Month}
		if p.PeerValue != nil {
			peerX = append(peerX, x)
			peerY = append(peerY, *p.PeerValue)
		}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name: "You",
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
				StrokeWidth: 2.5,
			},
			XValues: userX,
			YValues: userY,
		},
	}
	if len(peerX) >= 2 {
		series = append(series, chart.ContinuousSeries{
			Name: peer.Name,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("22c55e"), // green-500
				StrokeWidth: 2.5,
			},
			XValues: peerX,
			YValues: peerY,
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Performance vs %s", peer.Name),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.1fk", f/1000)
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
