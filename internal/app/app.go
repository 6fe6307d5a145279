// Package app wires configuration, the backend client, the session store and
// the services into one application object for the CLI commands.
package app

import (
	"context"
	"fmt"

	"github.com/acutrader/acutrader-cli/internal/clients/backend"
	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/models"
	"github.com/acutrader/acutrader-cli/internal/services/chart"
	"github.com/acutrader/acutrader-cli/internal/services/market"
	"github.com/acutrader/acutrader-cli/internal/services/portfolio"
	"github.com/acutrader/acutrader-cli/internal/services/quote"
	"github.com/acutrader/acutrader-cli/internal/services/trade"
	"github.com/acutrader/acutrader-cli/internal/services/watchlist"
	"github.com/acutrader/acutrader-cli/internal/session"
)

// App holds the wired application.
type App struct {
	Config *common.Config
	Logger *common.Logger

	Client  *backend.Client
	Session *session.Store

	Quotes    *quote.Service
	Portfolio *portfolio.Service
	Charts    *chart.Service
	Market    *market.Service
	Watchlist *watchlist.Service
	Trade     *trade.Service
}

// New builds the application from configuration. The persisted session token,
// if any, is attached to the backend client.
func New(cfg *common.Config, logger *common.Logger) (*App, error) {
	store, err := session.Open(cfg.Session.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	client := backend.NewClient(
		backend.WithBaseURL(cfg.Backend.BaseURL),
		backend.WithRateLimit(cfg.Backend.RateLimit),
		backend.WithTimeout(cfg.Backend.GetTimeout()),
		backend.WithLogger(logger),
	)

	if token, _, err := store.LoadSession(); err == nil && token != "" {
		client.SetToken(token)
	}

	quotes := quote.NewService(client, store, cfg.Session.GetQuoteTTL(), logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Client:    client,
		Session:   store,
		Quotes:    quotes,
		Portfolio: portfolio.NewService(client, quotes, cfg.Trading.StartingBalance, logger),
		Charts:    chart.NewService(client, logger),
		Market:    market.NewService(client, logger),
		Watchlist: watchlist.NewService(client, logger),
		Trade:     trade.NewService(client, logger),
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.Session.Close()
}

// RequireSession ensures a live session exists: a token must be persisted and
// not expired. Returns the cached profile.
func (a *App) RequireSession() (*models.User, error) {
	token, user, err := a.Session.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !session.TokenValid(token) {
		return nil, fmt.Errorf("no active session, run 'acutrader login' first")
	}
	return user, nil
}

// Login authenticates and persists the resulting session.
func (a *App) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	resp, err := a.Client.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err := a.Session.SaveSession(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return resp.User, nil
}

// Register signs up, then persists the session issued with the new account.
func (a *App) Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}

	resp, err := a.Client.Register(ctx, models.Registration{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.Session.SaveSession(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return resp.User, nil
}

// Logout clears the persisted session.
func (a *App) Logout() error {
	return a.Session.Clear()
}
