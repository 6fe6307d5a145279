// Package session persists local session state: the bearer token, the cached
// profile, and opportunistic per-symbol quote snapshots.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

var (
	authBucket   = []byte("auth")
	quotesBucket = []byte("quotes")

	tokenKey = []byte("token")
	userKey  = []byte("user")
)

// Store is a bbolt-backed session store.
type Store struct {
	db *bolt.DB
}

// snapshot wraps a cached quote with its storage time for TTL checks.
type snapshot struct {
	Quote    *models.Quote `json:"quote"`
	StoredAt time.Time     `json:"stored_at"`
}

// Open opens (or creates) the session database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{authBucket, quotesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveSession persists the token and profile.
func (s *Store) SaveSession(token string, user *models.User) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(authBucket)
		if err := b.Put(tokenKey, []byte(token)); err != nil {
			return err
		}
		if user == nil {
			return b.Delete(userKey)
		}
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
		return b.Put(userKey, data)
	})
}

// LoadSession returns the persisted token and profile. A missing session
// yields empty values, not an error.
func (s *Store) LoadSession() (string, *models.User, error) {
	var token string
	var user *models.User

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(authBucket)
		token = string(b.Get(tokenKey))
		if data := b.Get(userKey); data != nil {
			user = &models.User{}
			if err := json.Unmarshal(data, user); err != nil {
				return fmt.Errorf("failed to decode user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Clear removes all session state, including cached snapshots.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{authBucket, quotesBucket} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}

// PutQuote stashes a quote snapshot keyed by symbol.
func (s *Store) PutQuote(symbol string, quote *models.Quote) error {
	data, err := json.Marshal(snapshot{Quote: quote, StoredAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(quotesBucket).Put([]byte(symbol), data)
	})
}

// GetQuote returns a snapshot no older than maxAge. Stale or undecodable
// snapshots report a miss; the caller's fresh fetch will overwrite them.
func (s *Store) GetQuote(symbol string, maxAge time.Duration) (*models.Quote, bool) {
	var snap snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(quotesBucket).Get([]byte(symbol))
		if data == nil {
			return fmt.Errorf("not found")
		}
		return json.Unmarshal(data, &snap)
	})
	if err != nil || snap.Quote == nil {
		return nil, false
	}
	if time.Since(snap.StoredAt) > maxAge {
		return nil, false
	}
	return snap.Quote, true
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ interfaces.SessionStore = (*Store)(nil)
