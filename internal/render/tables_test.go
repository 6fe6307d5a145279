package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acutrader/acutrader-cli/internal/models"
)

func TestMarketMoversRendersTrendColumn(t *testing.T) {
	var buf bytes.Buffer
	MarketMovers(&buf, "TOP GAINERS", []models.MarketMover{
		{
			Symbol:    "NVDA",
			Name:      "NVIDIA Corporation",
			Price:     875.0,
			ChangePct: 4.2,
			ChartData: []models.PricePoint{
				{Value: 800}, {Value: 820}, {Value: 850}, {Value: 875},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "TREND")
	assert.Contains(t, out, "▁")
	assert.Contains(t, out, "█")
}

func TestMarketMoversWithoutChartData(t *testing.T) {
	var buf bytes.Buffer
	MarketMovers(&buf, "TOP LOSERS", []models.MarketMover{
		{Symbol: "XYZ", Name: "Xyz Corp", Price: 12.0, ChangePct: -3.1},
	})

	out := buf.String()
	assert.Contains(t, out, "XYZ")
	assert.NotContains(t, out, "▄", "no series means no sparkline")
}

func TestTransactionsFormatsDates(t *testing.T) {
	var buf bytes.Buffer
	Transactions(&buf, []models.Transaction{
		{Date: "2025-06-02T14:30:00Z", Symbol: "AAPL", Type: models.TransactionBuy, Quantity: 5, Price: 190},
	})

	out := buf.String()
	assert.Contains(t, out, "Jun 02, 2025")
	assert.NotContains(t, out, "2025-06-02T14:30:00Z")
}
