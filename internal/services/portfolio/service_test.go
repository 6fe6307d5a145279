package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acutrader/acutrader-cli/internal/models"
)

func TestAggregateSingleHolding(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "AAPL", Quantity: 10, AvgCost: 150},
	}
	quotes := map[string]*models.Quote{
		"AAPL": {Symbol: "AAPL", Price: 157.5, ChangePct: 0.85},
	}

	summary := Aggregate(holdings, quotes, 10000)
	require.Len(t, summary.Holdings, 1)

	h := summary.Holdings[0]
	assert.InDelta(t, 1575.00, h.MarketValue, 0.001)
	assert.InDelta(t, 13.3875, h.DailyPL, 0.001)
	assert.InDelta(t, 75.0, h.UnrealizedPL, 0.001)

	assert.InDelta(t, 1575.00, summary.TotalValue, 0.001)
	assert.InDelta(t, 1500.00, summary.TotalCost, 0.001)
	assert.InDelta(t, 8500.00, summary.AvailableCash, 0.001)
	assert.InDelta(t, 10075.00, summary.AccountValue, 0.001)
}

func TestAggregateMissingQuoteFallsBackToCost(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "GME", Quantity: 4, AvgCost: 25},
	}

	summary := Aggregate(holdings, map[string]*models.Quote{}, 10000)
	require.Len(t, summary.Holdings, 1)

	h := summary.Holdings[0]
	assert.Equal(t, 25.0, h.Price, "missing quote values the holding at cost")
	assert.Equal(t, 100.0, h.MarketValue)
	assert.Equal(t, 0.0, h.DailyPL)
	assert.Equal(t, 0.0, h.UnrealizedPL)
}

func TestAggregateZeroPriceQuoteFallsBackToCost(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "XYZ", Quantity: 2, AvgCost: 40},
	}
	quotes := map[string]*models.Quote{
		"XYZ": {Symbol: "XYZ", Price: 0, ChangePct: 5},
	}

	summary := Aggregate(holdings, quotes, 10000)
	assert.Equal(t, 40.0, summary.Holdings[0].Price)
	assert.Equal(t, 0.0, summary.Holdings[0].DailyPL)
}

func TestAggregateEmptyHoldings(t *testing.T) {
	summary := Aggregate(nil, nil, 10000)

	assert.Empty(t, summary.Holdings)
	assert.Equal(t, 0.0, summary.TotalValue)
	assert.Equal(t, 0.0, summary.DailyPLPct, "no division by a zero total")
	assert.Equal(t, 10000.0, summary.AvailableCash)
	assert.Equal(t, 10000.0, summary.AccountValue)
}

func TestAggregateCashMayGoNegative(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "BRK", Quantity: 30, AvgCost: 400},
	}

	summary := Aggregate(holdings, map[string]*models.Quote{}, 10000)
	assert.Equal(t, -2000.0, summary.AvailableCash)
}

func TestAggregatePreservesHoldingOrder(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "MSFT", Quantity: 1, AvgCost: 100},
		{Symbol: "AAPL", Quantity: 1, AvgCost: 100},
		{Symbol: "GOOG", Quantity: 1, AvgCost: 100},
	}

	summary := Aggregate(holdings, map[string]*models.Quote{}, 10000)
	got := []string{summary.Holdings[0].Symbol, summary.Holdings[1].Symbol, summary.Holdings[2].Symbol}
	assert.Equal(t, []string{"MSFT", "AAPL", "GOOG"}, got)
}
