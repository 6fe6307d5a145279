package chart

import (
	"context"
	"fmt"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

// Service fetches historical bars and prepares them for rendering.
type Service struct {
	client interfaces.BackendClient
	logger *common.Logger
}

// NewService creates a new chart service.
func NewService(client interfaces.BackendClient, logger *common.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Get fetches and prepares the dataset for one symbol and period. Changing the
// period is a full refetch and replace, never an incremental merge.
func (s *Service) Get(ctx context.Context, symbol string, period models.ChartPeriod) (*Prepared, error) {
	bars, err := s.client.GetHistorical(ctx, symbol, period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch historical data for %s: %w", symbol, err)
	}

	prepared := Prepare(bars)
	if len(prepared.Bars) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Str("period", string(period)).
		Int("bars", len(prepared.Bars)).
		Int("indicator_series", len(prepared.Indicators)).
		Msg("Chart data prepared")

	return prepared, nil
}
