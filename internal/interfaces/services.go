// Package interfaces defines service contracts for the AcuTrader terminal client
package interfaces

import (
	"context"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// QuoteService resolves normalized quotes, one symbol or many at once.
type QuoteService interface {
	// GetQuote retrieves and normalizes a single quote. The session snapshot
	// cache is consulted first; a fresh fetch overwrites a stale snapshot.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetQuotes fans out per-symbol requests and joins when all complete.
	// A failed request degrades to an empty quote for that symbol only.
	GetQuotes(ctx context.Context, symbols []string) map[string]*models.Quote

	// Resolve finds the quote for a query via search, preferring an exact
	// symbol match over the first result.
	Resolve(ctx context.Context, query string) (*models.Quote, error)

	// Lookup tries the direct quote endpoint, falling back to Resolve when
	// it fails
	Lookup(ctx context.Context, query string) (*models.Quote, error)

	// Detail returns a Lookup quote enriched from the supplementary
	// best-effort endpoints
	Detail(ctx context.Context, query string) (*models.Quote, error)
}
