// Package portfolio aggregates holdings against live quotes and ranks the
// resulting positions for the dashboard.
package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

// Service computes portfolio summaries from backend holdings and live quotes.
type Service struct {
	client          interfaces.BackendClient
	quotes          interfaces.QuoteService
	startingBalance float64
	logger          *common.Logger
}

// NewService creates a new portfolio service.
func NewService(client interfaces.BackendClient, quotes interfaces.QuoteService, startingBalance float64, logger *common.Logger) *Service {
	return &Service{
		client:          client,
		quotes:          quotes,
		startingBalance: startingBalance,
		logger:          logger,
	}
}

// GetSummary fetches holdings, fans out their quotes and aggregates.
func (s *Service) GetSummary(ctx context.Context) (*models.PortfolioSummary, error) {
	holdings, err := s.client.GetPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holdings: %w", err)
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}

	quotes := s.quotes.GetQuotes(ctx, symbols)
	return Aggregate(holdings, quotes, s.startingBalance), nil
}

// Aggregate values each holding against its quote and derives account totals.
// Holdings keep their input order. A holding whose quote is missing or carries
// no price is valued at its average cost with zero daily change.
func Aggregate(holdings []models.Holding, quotes map[string]*models.Quote, startingBalance float64) *models.PortfolioSummary {
	summary := &models.PortfolioSummary{
		Holdings: make([]models.HoldingValuation, 0, len(holdings)),
	}

	for _, h := range holdings {
		price := h.AvgCost
		changePct := 0.0
		q, ok := quotes[h.Symbol]
		if !ok {
			q, ok = quotes[strings.ToUpper(h.Symbol)]
		}
		if ok && q != nil && q.Price > 0 {
			price = q.Price
			changePct = q.ChangePct
		}

		marketValue := h.Quantity * price
		// Daily P&L approximates today's move from the percent change, not
		// yesterday's close.
		dailyPL := h.Quantity * price * changePct / 100
		costBasis := h.Quantity * h.AvgCost

		summary.Holdings = append(summary.Holdings, models.HoldingValuation{
			Symbol:       h.Symbol,
			Quantity:     h.Quantity,
			AvgCost:      h.AvgCost,
			Price:        price,
			ChangePct:    changePct,
			MarketValue:  marketValue,
			DailyPL:      dailyPL,
			UnrealizedPL: marketValue - costBasis,
		})

		summary.TotalValue += marketValue
		summary.TotalDailyPL += dailyPL
		summary.TotalCost += costBasis
	}

	if summary.TotalValue != 0 {
		summary.DailyPLPct = summary.TotalDailyPL / summary.TotalValue * 100
	}

	// Cash is the starting balance less cost basis. Not clamped: the sim lets
	// it go negative rather than hiding an over-allocated account.
	summary.AvailableCash = startingBalance - summary.TotalCost
	summary.AccountValue = summary.TotalValue + summary.AvailableCash

	return summary
}
