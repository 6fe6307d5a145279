package watchlist

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acutrader/acutrader-cli/internal/common"
	"github.com/acutrader/acutrader-cli/internal/interfaces"
	"github.com/acutrader/acutrader-cli/internal/models"
)

// fakeBackend emulates the backend's toggle semantics against its own set.
type fakeBackend struct {
	interfaces.BackendClient
	members   map[string]bool
	toggleErr error
	listErr   error
}

func newFakeBackend(symbols ...string) *fakeBackend {
	members := make(map[string]bool)
	for _, s := range symbols {
		members[s] = true
	}
	return &fakeBackend{members: members}
}

func (f *fakeBackend) GetWatchlist(context.Context) ([]models.WatchlistItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := make([]models.WatchlistItem, 0, len(f.members))
	for s := range f.members {
		items = append(items, models.WatchlistItem{Symbol: s})
	}
	return items, nil
}

func (f *fakeBackend) ToggleWatchlist(_ context.Context, symbol string) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	if f.members[symbol] {
		delete(f.members, symbol)
	} else {
		f.members[symbol] = true
	}
	return nil
}

func TestRefreshReplacesMirror(t *testing.T) {
	backend := newFakeBackend("AAPL", "MSFT")
	svc := NewService(backend, common.NewSilentLogger())

	require.NoError(t, svc.Refresh(context.Background()))
	assert.True(t, svc.Contains("AAPL"))
	assert.True(t, svc.Contains("msft"), "membership check is case-insensitive")
	assert.False(t, svc.Contains("TSLA"))

	delete(backend.members, "AAPL")
	require.NoError(t, svc.Refresh(context.Background()))
	assert.False(t, svc.Contains("AAPL"), "refetch replaces wholesale")
}

func TestToggleAdds(t *testing.T) {
	backend := newFakeBackend()
	svc := NewService(backend, common.NewSilentLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	member, err := svc.Toggle(context.Background(), "tsla")
	require.NoError(t, err)
	assert.True(t, member)
	assert.True(t, svc.Contains("TSLA"))
}

func TestToggleTwiceIsIdempotent(t *testing.T) {
	backend := newFakeBackend("AAPL")
	svc := NewService(backend, common.NewSilentLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	member, err := svc.Toggle(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.False(t, member)

	member, err = svc.Toggle(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.True(t, member, "toggling twice restores original membership")
	assert.True(t, svc.Contains("AAPL"))
}

func TestToggleBackendFailureLeavesMirrorUnchanged(t *testing.T) {
	backend := newFakeBackend("AAPL")
	svc := NewService(backend, common.NewSilentLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	backend.toggleErr = fmt.Errorf("backend down")
	member, err := svc.Toggle(context.Background(), "AAPL")
	assert.Error(t, err)
	assert.True(t, member)
	assert.True(t, svc.Contains("AAPL"))
}

func TestToggleRefetchWinsOverProvisional(t *testing.T) {
	// Backend accepts the toggle but reports different authoritative state:
	// the refetch result must overwrite the provisional flip.
	backend := newFakeBackend("AAPL")
	svc := NewService(backend, common.NewSilentLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	_, err := svc.Toggle(context.Background(), "MSFT")
	require.NoError(t, err)

	// Authoritative list now holds AAPL and MSFT.
	assert.True(t, svc.Contains("AAPL"))
	assert.True(t, svc.Contains("MSFT"))

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "AAPL", items[0].Symbol)
	assert.Equal(t, "MSFT", items[1].Symbol)
}

func TestToggleKeepsProvisionalWhenRefetchFails(t *testing.T) {
	backend := newFakeBackend()
	svc := NewService(backend, common.NewSilentLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	backend.listErr = fmt.Errorf("timeout")
	member, err := svc.Toggle(context.Background(), "NVDA")
	require.NoError(t, err)
	assert.True(t, member, "provisional flip stands when the refetch fails")
}
