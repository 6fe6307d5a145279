package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acutrader/acutrader-cli/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(WithBaseURL(server.URL), WithRateLimit(100))
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"token":"abc123","user":{"id":"u1","firstName":"Ada","email":"ada@example.com"}}`))
	})

	resp, err := client.Login(context.Background(), models.Credentials{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Ada", resp.User.FirstName)
	assert.Equal(t, "abc123", client.bearerToken(), "login should attach the token")
}

func TestLoginMissingToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	client.SetToken("tok-xyz")

	_, err := client.GetPortfolio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
}

func TestAPIErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Insufficient funds"}`))
	})

	err := client.Buy(context.Background(), models.TradeOrder{Symbol: "AAPL", Quantity: 1, Price: 200})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Insufficient funds", apiErr.Message)
	assert.Equal(t, "/user/buy", apiErr.Endpoint)
}

func TestDecodeListShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{
			name:    "bare array",
			payload: `[{"symbol":"AAPL"},{"symbol":"MSFT"}]`,
			want:    2,
		},
		{
			name:    "Stocks wrapper",
			payload: `{"Stocks":[{"symbol":"AAPL"}]}`,
			want:    1,
		},
		{
			name:    "data wrapper",
			payload: `{"data":[{"symbol":"AAPL"},{"symbol":"GOOG"},{"symbol":"AMZN"}]}`,
			want:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.payload))
			})

			results, err := client.GetTrending(context.Background())
			require.NoError(t, err)
			assert.Len(t, results, tt.want)
		})
	}
}

func TestSearchQueryParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/search", r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"symbol":"AAPL","displayName":"Apple Inc."}]`))
	})

	results, err := client.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "AAPL", results[0]["symbol"])
}

func TestGetHistorical(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/historical/AAPL", r.URL.Path)
		assert.Equal(t, "1wk", r.URL.Query().Get("period"))
		w.Write([]byte(`[
			{"date":"2025-06-02","open":200,"high":205,"low":198,"close":203,"volume":1000,
			 "indicators":{"sma":{"period20":201.5},"bollinger":{"upper":210,"lower":195}}},
			{"date":"2025-06-09","open":203,"high":208,"low":202,"close":207,"volume":1200}
		]`))
	})

	bars, err := client.GetHistorical(context.Background(), "AAPL", models.PeriodWeekly)
	require.NoError(t, err)
	require.Len(t, bars, 2)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), bars[0].Date)
	assert.Equal(t, 203.0, bars[0].Close)
	require.NotNil(t, bars[0].Indicators)
	require.NotNil(t, bars[0].Indicators.SMA20)
	assert.Equal(t, 201.5, *bars[0].Indicators.SMA20)
	assert.Nil(t, bars[0].Indicators.EMA12)
	require.NotNil(t, bars[0].Indicators.BBUpper)
	assert.Equal(t, 210.0, *bars[0].Indicators.BBUpper)

	assert.Nil(t, bars[1].Indicators)
}

func TestGetPriceChange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/price-change/AAPL", r.URL.Path)
		w.Write([]byte(`{"symbol":"AAPL","fiftyTwoWeekChangePercent":24.5}`))
	})

	raw, err := client.GetPriceChange(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 24.5, raw["fiftyTwoWeekChangePercent"])
}

func TestGetRecommendations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/recommendations/AAPL", r.URL.Path)
		w.Write([]byte(`{"data":[{"symbol":"AAPL","rating":"1.8 - Buy"}]}`))
	})

	recs, err := client.GetRecommendations(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "1.8 - Buy", recs[0]["rating"])
}

func TestToggleWatchlist(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/watchlist", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte(`{"ok":true}`))
	})

	err := client.ToggleWatchlist(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"TSLA"}`, gotBody)
}
