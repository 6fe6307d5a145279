// Package trade executes simulated buy and sell orders against the backend.
package trade

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

// ErrInsufficientShares is returned when a sell exceeds the cached holding
// quantity. Checked client-side before the order is sent; every other failure
// surfaces as a generic transaction error.
var ErrInsufficientShares = errors.New("insufficient shares to sell")

// Service places orders and refreshes the authoritative state afterwards.
// Holdings are never mutated optimistically: a failed order leaves them
// untouched, a successful one is followed by a refetch that wins.
type Service struct {
	client interfaces.BackendClient
	logger *common.Logger
}

// NewService creates a new trade service.
func NewService(client interfaces.BackendClient, logger *common.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Result carries the refetched state after a successful order.
type Result struct {
	Holdings     []models.Holding
	Transactions []models.Transaction
}

func validateOrder(symbol string, quantity float64) error {
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	if quantity <= 0 || quantity != math.Trunc(quantity) {
		return fmt.Errorf("quantity must be a positive whole number")
	}
	return nil
}

// Buy places a buy order at the given price and refetches holdings and the
// ledger on success.
func (s *Service) Buy(ctx context.Context, symbol string, quantity, price float64) (*Result, error) {
	if err := validateOrder(symbol, quantity); err != nil {
		return nil, err
	}

	order := models.TradeOrder{Symbol: strings.ToUpper(strings.TrimSpace(symbol)), Quantity: quantity, Price: price}
	if err := s.client.Buy(ctx, order); err != nil {
		s.logger.Warn().Err(err).Str("symbol", order.Symbol).Msg("Buy order rejected")
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	s.logger.Info().Str("symbol", order.Symbol).Float64("quantity", quantity).Float64("price", price).Msg("Buy executed")
	return s.refetch(ctx)
}

// Sell places a sell order, first guarding the quantity against the cached
// holdings so an obviously oversized order never reaches the backend.
func (s *Service) Sell(ctx context.Context, holdings []models.Holding, symbol string, quantity, price float64) (*Result, error) {
	if err := validateOrder(symbol, quantity); err != nil {
		return nil, err
	}

	order := models.TradeOrder{Symbol: strings.ToUpper(strings.TrimSpace(symbol)), Quantity: quantity, Price: price}

	owned := 0.0
	for _, h := range holdings {
		if strings.EqualFold(h.Symbol, order.Symbol) {
			owned = h.Quantity
			break
		}
	}
	if quantity > owned {
		return nil, fmt.Errorf("%w: have %g, tried to sell %g", ErrInsufficientShares, owned, quantity)
	}

	if err := s.client.Sell(ctx, order); err != nil {
		s.logger.Warn().Err(err).Str("symbol", order.Symbol).Msg("Sell order rejected")
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	s.logger.Info().Str("symbol", order.Symbol).Float64("quantity", quantity).Float64("price", price).Msg("Sell executed")
	return s.refetch(ctx)
}

func (s *Service) refetch(ctx context.Context) (*Result, error) {
	holdings, err := s.client.GetPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("order executed but holdings refetch failed: %w", err)
	}
	txns, err := s.client.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("order executed but ledger refetch failed: %w", err)
	}
	return &Result{Holdings: holdings, Transactions: txns}, nil
}
