// Package market implements the stock screener and market-wide movers views.
package market

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
	"github.com/acutrader/acutrader-cli/internal/services/quote"
)

const maxMoversPerSide = 10

// Service backs the screener and market overview views.
type Service struct {
	client interfaces.BackendClient
	logger *common.Logger
}

// NewService creates a new market service.
func NewService(client interfaces.BackendClient, logger *common.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// normalizeListing turns raw listing rows into quotes, dropping rows without a
// symbol and deduplicating by upper-cased symbol, first occurrence wins.
func normalizeListing(rows []models.RawQuote) []*models.Quote {
	seen := make(map[string]struct{}, len(rows))
	quotes := make([]*models.Quote, 0, len(rows))
	for _, raw := range rows {
		q := quote.Normalize("", raw)
		if q.Symbol == "" {
			continue
		}
		key := strings.ToUpper(q.Symbol)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		quotes = append(quotes, q)
	}
	return quotes
}

// Trending returns the default screener listing.
func (s *Service) Trending(ctx context.Context) ([]*models.Quote, error) {
	rows, err := s.client.GetTrending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending stocks: %w", err)
	}
	return normalizeListing(rows), nil
}

// Search returns screener rows matching a free-text query.
func (s *Service) Search(ctx context.Context, query string) ([]*models.Quote, error) {
	rows, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed for %q: %w", query, err)
	}
	return normalizeListing(rows), nil
}

// Overview is the market-wide movers snapshot.
type Overview struct {
	Gainers []models.MarketMover
	Losers  []models.MarketMover
}

// GetOverview fetches top gainers and losers concurrently, each truncated to
// ten entries. A failed side degrades to an empty list.
func (s *Service) GetOverview(ctx context.Context) *Overview {
	overview := &Overview{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		gainers, err := s.client.GetTopGainers(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Failed to fetch top gainers")
			return
		}
		overview.Gainers = truncateMovers(gainers)
	}()

	go func() {
		defer wg.Done()
		losers, err := s.client.GetTopLosers(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Failed to fetch top losers")
			return
		}
		overview.Losers = truncateMovers(losers)
	}()

	wg.Wait()
	return overview
}

func truncateMovers(movers []models.MarketMover) []models.MarketMover {
	if len(movers) > maxMoversPerSide {
		return movers[:maxMoversPerSide]
	}
	return movers
}
