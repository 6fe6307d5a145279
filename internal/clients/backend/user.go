package backend

import (
	"context"
	"fmt"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// Login exchanges credentials for a bearer token and profile. The token is
// attached to the client for subsequent user-scoped calls.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login failed: no token in response")
	}

	c.SetToken(resp.Token)
	c.logger.Debug().Str("email", creds.Email).Msg("Logged in")
	return &resp, nil
}

// Register creates an account. The backend issues a token immediately, so a
// successful signup doubles as a login.
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/register", reg, &resp); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("registration failed: no token in response")
	}

	c.SetToken(resp.Token)
	return &resp, nil
}

// GetPortfolio retrieves the user's current holdings.
func (c *Client) GetPortfolio(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := c.get(ctx, "/user/portfolio", nil, &holdings); err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return holdings, nil
}

// GetWatchlist retrieves the user's watchlist membership.
func (c *Client) GetWatchlist(ctx context.Context) ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	if err := c.get(ctx, "/user/watchlist", nil, &items); err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	return items, nil
}

// ToggleWatchlist flips membership for a symbol. The backend decides whether
// the call adds or removes; the caller refetches for the authoritative state.
func (c *Client) ToggleWatchlist(ctx context.Context, symbol string) error {
	body := map[string]string{"symbol": symbol}
	if err := c.post(ctx, "/user/watchlist", body, nil); err != nil {
		return fmt.Errorf("failed to toggle watchlist for %s: %w", symbol, err)
	}
	return nil
}

// GetTransactions retrieves the user's trade ledger.
func (c *Client) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := c.get(ctx, "/user/transactions", nil, &txns); err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txns, nil
}

// Buy executes a simulated buy order.
func (c *Client) Buy(ctx context.Context, order models.TradeOrder) error {
	if err := c.post(ctx, "/user/buy", order, nil); err != nil {
		return fmt.Errorf("buy order failed: %w", err)
	}
	return nil
}

// Sell executes a simulated sell order.
func (c *Client) Sell(ctx context.Context, order models.TradeOrder) error {
	if err := c.post(ctx, "/user/sell", order, nil); err != nil {
		return fmt.Errorf("sell order failed: %w", err)
	}
	return nil
}
