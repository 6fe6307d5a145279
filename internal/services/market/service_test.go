package market

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

type mockBackend struct {
	interfaces.BackendClient
	trendingFn func(ctx context.Context) ([]models.RawQuote, error)
	gainersFn  func(ctx context.Context) ([]models.MarketMover, error)
	losersFn   func(ctx context.Context) ([]models.MarketMover, error)
}

func (m *mockBackend) GetTrending(ctx context.Context) ([]models.RawQuote, error) {
	return m.trendingFn(ctx)
}

func (m *mockBackend) GetTopGainers(ctx context.Context) ([]models.MarketMover, error) {
	return m.gainersFn(ctx)
}

func (m *mockBackend) GetTopLosers(ctx context.Context) ([]models.MarketMover, error) {
	return m.losersFn(ctx)
}

func TestTrendingDeduplicatesBySymbol(t *testing.T) {
	backend := &mockBackend{
		trendingFn: func(context.Context) ([]models.RawQuote, error) {
			return []models.RawQuote{
				{"symbol": "AAPL", "price": 190.0},
				{"symbol": "aapl", "price": 191.0},
				{"name": "No Symbol Corp", "price": 5.0},
				{"symbol": "MSFT", "price": 420.0},
			}, nil
		},
	}
	svc := NewService(backend, common.NewSilentLogger())

	quotes, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 2, "duplicates and symbol-less rows are dropped")
	assert.Equal(t, "AAPL", quotes[0].Symbol)
	assert.Equal(t, 190.0, quotes[0].Price, "first occurrence wins")
	assert.Equal(t, "MSFT", quotes[1].Symbol)
}

func TestGetOverviewTruncatesToTen(t *testing.T) {
	movers := make([]models.MarketMover, 15)
	for i := range movers {
		movers[i] = models.MarketMover{Symbol: fmt.Sprintf("S%d", i)}
	}
	backend := &mockBackend{
		gainersFn: func(context.Context) ([]models.MarketMover, error) { return movers, nil },
		losersFn:  func(context.Context) ([]models.MarketMover, error) { return movers[:3], nil },
	}
	svc := NewService(backend, common.NewSilentLogger())

	overview := svc.GetOverview(context.Background())
	assert.Len(t, overview.Gainers, 10)
	assert.Len(t, overview.Losers, 3)
}

func TestGetOverviewFailedSideDegrades(t *testing.T) {
	backend := &mockBackend{
		gainersFn: func(context.Context) ([]models.MarketMover, error) {
			return nil, fmt.Errorf("upstream unavailable")
		},
		losersFn: func(context.Context) ([]models.MarketMover, error) {
			return []models.MarketMover{{Symbol: "DIP"}}, nil
		},
	}
	svc := NewService(backend, common.NewSilentLogger())

	overview := svc.GetOverview(context.Background())
	assert.Empty(t, overview.Gainers)
	require.Len(t, overview.Losers, 1)
	assert.Equal(t, "DIP", overview.Losers[0].Symbol)
}
