// Package interfaces defines service contracts for the AcuTrader terminal client
package interfaces

import (
	"context"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// BackendClient provides access to the AcuTrader backend API. All business
// state (balances, holdings, ledger, watchlist, market data) lives behind it.
type BackendClient interface {
	// Login exchanges credentials for a bearer token and profile
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)

	// Register creates an account and returns a bearer token and profile
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)

	// GetPortfolio retrieves current holdings (bearer auth)
	GetPortfolio(ctx context.Context) ([]models.Holding, error)

	// GetWatchlist retrieves watchlist membership (bearer auth)
	GetWatchlist(ctx context.Context) ([]models.WatchlistItem, error)

	// ToggleWatchlist flips membership for a symbol (bearer auth)
	ToggleWatchlist(ctx context.Context, symbol string) error

	// GetTransactions retrieves the trade ledger (bearer auth)
	GetTransactions(ctx context.Context) ([]models.Transaction, error)

	// Buy executes a simulated buy (bearer auth)
	Buy(ctx context.Context, order models.TradeOrder) error

	// Sell executes a simulated sell (bearer auth)
	Sell(ctx context.Context, order models.TradeOrder) error

	// GetQuote retrieves a live quote of provider-dependent shape
	GetQuote(ctx context.Context, symbol string) (models.RawQuote, error)

	// Search retrieves symbol/name search results with rich per-symbol fields
	Search(ctx context.Context, query string) ([]models.RawQuote, error)

	// GetTrending retrieves the default screener listing
	GetTrending(ctx context.Context) ([]models.RawQuote, error)

	// GetTopGainers retrieves market-wide gainers with embedded chart series
	GetTopGainers(ctx context.Context) ([]models.MarketMover, error)

	// GetTopLosers retrieves market-wide losers with embedded chart series
	GetTopLosers(ctx context.Context) ([]models.MarketMover, error)

	// GetHistorical retrieves OHLC bars with indicator sub-objects
	GetHistorical(ctx context.Context, symbol string, period models.ChartPeriod) ([]models.Bar, error)

	// GetPriceChange retrieves supplementary price-change data (best-effort)
	GetPriceChange(ctx context.Context, symbol string) (models.RawQuote, error)

	// GetRecommendations retrieves analyst recommendations (best-effort)
	GetRecommendations(ctx context.Context, symbol string) ([]models.RawQuote, error)

	// SetToken attaches a bearer token to subsequent user-scoped calls
	SetToken(token string)
}
