package quote

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

// Service fetches and normalizes quotes, consulting the session snapshot cache
// before going to the backend.
type Service struct {
	client   interfaces.BackendClient
	store    interfaces.SessionStore
	quoteTTL time.Duration
	logger   *common.Logger
}

// NewService creates a new quote service. store may be nil, which disables
// snapshot caching.
func NewService(client interfaces.BackendClient, store interfaces.SessionStore, quoteTTL time.Duration, logger *common.Logger) *Service {
	return &Service{
		client:   client,
		store:    store,
		quoteTTL: quoteTTL,
		logger:   logger,
	}
}

// GetQuote returns the normalized quote for a symbol. A snapshot no older than
// the configured TTL is served as-is; otherwise a fresh fetch overwrites it.
func (s *Service) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	if s.store != nil {
		if cached, ok := s.store.GetQuote(symbol, s.quoteTTL); ok {
			s.logger.Debug().Str("symbol", symbol).Msg("Quote served from snapshot cache")
			return cached, nil
		}
	}

	raw, err := s.client.GetQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}

	q := Normalize(symbol, raw)

	if s.store != nil {
		if err := s.store.PutQuote(symbol, q); err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Failed to cache quote snapshot")
		}
	}

	return q, nil
}

// GetQuotes fans out per-symbol requests and joins when all complete. A failed
// symbol degrades to an empty normalized quote so one bad symbol cannot sink a
// whole portfolio view.
func (s *Service) GetQuotes(ctx context.Context, symbols []string) map[string]*models.Quote {
	quotes := make(map[string]*models.Quote, len(symbols))
	if len(symbols) == 0 {
		return quotes
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()

			q, err := s.GetQuote(ctx, symbol)
			if err != nil {
				s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Quote fetch failed, using empty quote")
				q = Normalize(strings.ToUpper(strings.TrimSpace(symbol)), nil)
			}

			mu.Lock()
			quotes[strings.ToUpper(strings.TrimSpace(symbol))] = q
			mu.Unlock()
		}(symbol)
	}

	wg.Wait()
	return quotes
}

// Resolve finds the quote for a free-text query. An exact symbol match in the
// search results wins over the first result.
func (s *Service) Resolve(ctx context.Context, query string) (*models.Quote, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	results, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed for %q: %w", query, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results for %q", query)
	}

	selected := results[0]
	for _, raw := range results {
		if sym, ok := firstString(raw, "symbol"); ok && strings.EqualFold(sym, query) {
			selected = raw
			break
		}
	}

	return Normalize(strings.ToUpper(query), selected), nil
}

// Lookup resolves a symbol or free-text query to a quote: the direct quote
// endpoint first, falling back to search resolution when it fails. This is
// the list → detail navigation path, where the argument may be a company
// name rather than a ticker.
func (s *Service) Lookup(ctx context.Context, query string) (*models.Quote, error) {
	q, err := s.GetQuote(ctx, query)
	if err == nil {
		return q, nil
	}

	s.logger.Debug().Str("query", query).Msg("Direct quote fetch failed, resolving via search")
	resolved, rerr := s.Resolve(ctx, query)
	if rerr != nil {
		return nil, fmt.Errorf("no quote for %q: %w", query, err)
	}
	return resolved, nil
}

// Detail returns the quote enriched from the supplementary best-effort
// endpoints: price-change fields fill a missing 52-week change and the top
// recommendation fills a missing analyst rating. Either fetch failing leaves
// the quote as-is.
func (s *Service) Detail(ctx context.Context, query string) (*models.Quote, error) {
	q, err := s.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}

	if q.Change52WeekPct == nil {
		raw, err := s.client.GetPriceChange(ctx, q.Symbol)
		if err != nil {
			s.logger.Debug().Err(err).Str("symbol", q.Symbol).Msg("Price change fetch failed")
		} else {
			q.Change52WeekPct = floatPtr(raw, "fiftyTwoWeekChangePercent", "52Week", "1Y")
		}
	}

	if q.AnalystRating == "" {
		recs, err := s.client.GetRecommendations(ctx, q.Symbol)
		if err != nil {
			s.logger.Debug().Err(err).Str("symbol", q.Symbol).Msg("Recommendations fetch failed")
		} else if len(recs) > 0 {
			q.AnalystRating, _ = firstString(recs[0], "averageAnalystRating", "analystRating", "rating", "recommendation")
		}
	}

	return q, nil
}

var _ interfaces.QuoteService = (*Service)(nil)
