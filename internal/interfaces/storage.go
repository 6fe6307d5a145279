// Package interfaces defines service contracts for the AcuTrader terminal client
package interfaces

import (
	"time"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// SessionStore persists the local session: bearer token, cached profile, and
// opportunistic per-symbol quote snapshots. Not authoritative — a fresh fetch
// always overwrites a snapshot.
type SessionStore interface {
	// SaveSession persists the token and profile (populated on login)
	SaveSession(token string, user *models.User) error

	// LoadSession returns the persisted token and profile, or empty values
	LoadSession() (string, *models.User, error)

	// Clear removes all session state (logout)
	Clear() error

	// PutQuote stashes a quote snapshot keyed by symbol
	PutQuote(symbol string, quote *models.Quote) error

	// GetQuote returns a snapshot no older than maxAge, or (nil, false)
	GetQuote(symbol string, maxAge time.Duration) (*models.Quote, bool)

	// Close releases the underlying store
	Close() error
}
