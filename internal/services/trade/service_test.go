package trade

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

type mockBackend struct {
	interfaces.BackendClient
	buyErr    error
	sellErr   error
	buys      []models.TradeOrder
	sells     []models.TradeOrder
	holdings  []models.Holding
	txns      []models.Transaction
	refetches int
}

func (m *mockBackend) Buy(_ context.Context, order models.TradeOrder) error {
	if m.buyErr != nil {
		return m.buyErr
	}
	m.buys = append(m.buys, order)
	return nil
}

func (m *mockBackend) Sell(_ context.Context, order models.TradeOrder) error {
	if m.sellErr != nil {
		return m.sellErr
	}
	m.sells = append(m.sells, order)
	return nil
}

func (m *mockBackend) GetPortfolio(context.Context) ([]models.Holding, error) {
	m.refetches++
	return m.holdings, nil
}

func (m *mockBackend) GetTransactions(context.Context) ([]models.Transaction, error) {
	return m.txns, nil
}

func TestBuyRefetchesState(t *testing.T) {
	backend := &mockBackend{
		holdings: []models.Holding{{Symbol: "AAPL", Quantity: 5, AvgCost: 190}},
		txns:     []models.Transaction{{Symbol: "AAPL", Type: models.TransactionBuy, Quantity: 5, Price: 190}},
	}
	svc := NewService(backend, common.NewSilentLogger())

	result, err := svc.Buy(context.Background(), "aapl", 5, 190)
	require.NoError(t, err)

	require.Len(t, backend.buys, 1)
	assert.Equal(t, "AAPL", backend.buys[0].Symbol)
	assert.Equal(t, 1, backend.refetches)
	assert.Len(t, result.Holdings, 1)
	assert.Len(t, result.Transactions, 1)
}

func TestBuyRejectsBadQuantity(t *testing.T) {
	svc := NewService(&mockBackend{}, common.NewSilentLogger())

	for _, qty := range []float64{0, -2, 1.5} {
		_, err := svc.Buy(context.Background(), "AAPL", qty, 100)
		assert.Error(t, err, "quantity %g should be rejected", qty)
	}
}

func TestBuyFailureDoesNotRefetch(t *testing.T) {
	backend := &mockBackend{buyErr: fmt.Errorf("insufficient funds")}
	svc := NewService(backend, common.NewSilentLogger())

	_, err := svc.Buy(context.Background(), "AAPL", 1, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction failed")
	assert.Equal(t, 0, backend.refetches, "failed order leaves holdings untouched")
}

func TestSellGuardsAgainstCachedQuantity(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend, common.NewSilentLogger())

	holdings := []models.Holding{{Symbol: "AAPL", Quantity: 3, AvgCost: 150}}
	_, err := svc.Sell(context.Background(), holdings, "AAPL", 10, 190)

	require.ErrorIs(t, err, ErrInsufficientShares)
	assert.Empty(t, backend.sells, "oversized sell never reaches the backend")
}

func TestSellUnownedSymbol(t *testing.T) {
	svc := NewService(&mockBackend{}, common.NewSilentLogger())

	_, err := svc.Sell(context.Background(), nil, "TSLA", 1, 240)
	assert.ErrorIs(t, err, ErrInsufficientShares)
}

func TestSellWithinHoldings(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend, common.NewSilentLogger())

	holdings := []models.Holding{{Symbol: "AAPL", Quantity: 10, AvgCost: 150}}
	_, err := svc.Sell(context.Background(), holdings, "aapl", 10, 190)

	require.NoError(t, err)
	require.Len(t, backend.sells, 1)
	assert.Equal(t, "AAPL", backend.sells[0].Symbol)
}

func TestSellBackendFailureIsGeneric(t *testing.T) {
	backend := &mockBackend{sellErr: fmt.Errorf("market closed")}
	svc := NewService(backend, common.NewSilentLogger())

	holdings := []models.Holding{{Symbol: "AAPL", Quantity: 10, AvgCost: 150}}
	_, err := svc.Sell(context.Background(), holdings, "AAPL", 1, 190)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientShares)
	assert.Contains(t, err.Error(), "transaction failed")
}
