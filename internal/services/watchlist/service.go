// Package watchlist mirrors the backend watchlist as a local set and applies
// the two-phase toggle: provisional local flip, then authoritative refetch.
package watchlist

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

// Service maintains the local membership mirror. Membership checks are O(1);
// the backend stays the source of truth.
type Service struct {
	client interfaces.BackendClient
	logger *common.Logger

	mu      sync.RWMutex
	members map[string]models.WatchlistItem
}

// NewService creates a new watchlist service.
func NewService(client interfaces.BackendClient, logger *common.Logger) *Service {
	return &Service{
		client:  client,
		logger:  logger,
		members: make(map[string]models.WatchlistItem),
	}
}

func key(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Refresh replaces the local mirror wholesale with the backend's list.
func (s *Service) Refresh(ctx context.Context) error {
	items, err := s.client.GetWatchlist(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch watchlist: %w", err)
	}

	members := make(map[string]models.WatchlistItem, len(items))
	for _, item := range items {
		members[key(item.Symbol)] = item
	}

	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	return nil
}

// Contains reports local membership for a symbol.
func (s *Service) Contains(symbol string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[key(symbol)]
	return ok
}

// Items returns the mirrored watchlist sorted by symbol.
func (s *Service) Items() []models.WatchlistItem {
	s.mu.RLock()
	items := make([]models.WatchlistItem, 0, len(s.members))
	for _, item := range s.members {
		items = append(items, item)
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return key(items[i].Symbol) < key(items[j].Symbol)
	})
	return items
}

// Toggle flips membership for a symbol in two phases: a provisional local
// flip for immediate feedback, then a refetch whose result replaces the
// mirror wholesale. The refetch always wins over the provisional state.
// Returns the authoritative membership after the toggle.
func (s *Service) Toggle(ctx context.Context, symbol string) (bool, error) {
	k := key(symbol)
	if k == "" {
		return false, fmt.Errorf("symbol is required")
	}

	if err := s.client.ToggleWatchlist(ctx, k); err != nil {
		return s.Contains(k), fmt.Errorf("failed to toggle %s: %w", k, err)
	}

	// Provisional flip; overwritten by the refetch below.
	s.mu.Lock()
	if _, ok := s.members[k]; ok {
		delete(s.members, k)
	} else {
		s.members[k] = models.WatchlistItem{Symbol: k}
	}
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Str("symbol", k).Msg("Watchlist refetch after toggle failed, keeping provisional state")
	}

	return s.Contains(k), nil
}
