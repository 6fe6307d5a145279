package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// listEnvelope handles the backend's inconsistent list wrappers: endpoints
// return a bare array, {"Stocks": [...]}, or {"data": [...]} depending on the
// upstream provider that fed them.
type listEnvelope struct {
	Stocks json.RawMessage `json:"Stocks"`
	Data   json.RawMessage `json:"data"`
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unrecognized list payload: %w", err)
	}
	if env.Stocks != nil {
		if err := json.Unmarshal(env.Stocks, &items); err != nil {
			return nil, fmt.Errorf("failed to decode Stocks payload: %w", err)
		}
		return items, nil
	}
	if env.Data != nil {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, fmt.Errorf("failed to decode data payload: %w", err)
		}
		return items, nil
	}
	return nil, fmt.Errorf("unrecognized list payload")
}

// getList fetches path and decodes whichever list wrapper comes back.
func getList[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, params, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

// GetQuote retrieves a live quote. The payload shape depends on the upstream
// provider, so it is decoded into a raw map for the normalizer to resolve.
func (c *Client) GetQuote(ctx context.Context, symbol string) (models.RawQuote, error) {
	var raw models.RawQuote
	if err := c.get(ctx, "/market/quote/"+url.PathEscape(symbol), nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	return raw, nil
}

// Search retrieves symbol/name matches for a query.
func (c *Client) Search(ctx context.Context, query string) ([]models.RawQuote, error) {
	params := url.Values{"q": {query}}
	results, err := getList[models.RawQuote](ctx, c, "/market/search", params)
	if err != nil {
		return nil, fmt.Errorf("search failed for %q: %w", query, err)
	}
	return results, nil
}

// GetTrending retrieves the default screener listing.
func (c *Client) GetTrending(ctx context.Context) ([]models.RawQuote, error) {
	results, err := getList[models.RawQuote](ctx, c, "/market/trending", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending stocks: %w", err)
	}
	return results, nil
}

// GetTopGainers retrieves the market-wide gainers listing.
func (c *Client) GetTopGainers(ctx context.Context) ([]models.MarketMover, error) {
	movers, err := getList[models.MarketMover](ctx, c, "/market/top-gainers", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get top gainers: %w", err)
	}
	return movers, nil
}

// GetTopLosers retrieves the market-wide losers listing.
func (c *Client) GetTopLosers(ctx context.Context) ([]models.MarketMover, error) {
	movers, err := getList[models.MarketMover](ctx, c, "/market/top-losers", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get top losers: %w", err)
	}
	return movers, nil
}

// wireBar is the historical endpoint's bar shape: dates as strings and
// indicators nested per indicator family.
type wireBar struct {
	Date       string          `json:"date"`
	Open       float64         `json:"open"`
	High       float64         `json:"high"`
	Low        float64         `json:"low"`
	Close      float64         `json:"close"`
	Volume     int64           `json:"volume"`
	Indicators *wireIndicators `json:"indicators"`
}

type wireIndicators struct {
	SMA *struct {
		Period20 *float64 `json:"period20"`
	} `json:"sma"`
	EMA *struct {
		Period12 *float64 `json:"period12"`
	} `json:"ema"`
	Bollinger *struct {
		Upper *float64 `json:"upper"`
		Lower *float64 `json:"lower"`
	} `json:"bollinger"`
}

// parseBarDate accepts the date formats the backend has been observed to emit.
func parseBarDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (w wireBar) toBar() models.Bar {
	bar := models.Bar{
		Date:   parseBarDate(w.Date),
		Open:   w.Open,
		High:   w.High,
		Low:    w.Low,
		Close:  w.Close,
		Volume: w.Volume,
	}
	if w.Indicators == nil {
		return bar
	}
	ind := &models.BarIndicators{}
	if w.Indicators.SMA != nil {
		ind.SMA20 = w.Indicators.SMA.Period20
	}
	if w.Indicators.EMA != nil {
		ind.EMA12 = w.Indicators.EMA.Period12
	}
	if w.Indicators.Bollinger != nil {
		ind.BBUpper = w.Indicators.Bollinger.Upper
		ind.BBLower = w.Indicators.Bollinger.Lower
	}
	bar.Indicators = ind
	return bar
}

// GetHistorical retrieves OHLC bars for a symbol at the requested interval.
// Bars come back in provider order; callers sort before rendering.
func (c *Client) GetHistorical(ctx context.Context, symbol string, period models.ChartPeriod) ([]models.Bar, error) {
	params := url.Values{"period": {string(period)}}
	wire, err := getList[wireBar](ctx, c, "/market/historical/"+url.PathEscape(symbol), params)
	if err != nil {
		return nil, fmt.Errorf("failed to get historical data for %s: %w", symbol, err)
	}

	bars := make([]models.Bar, 0, len(wire))
	for _, w := range wire {
		bars = append(bars, w.toBar())
	}
	return bars, nil
}

// GetPriceChange retrieves supplementary price-change fields for a symbol.
func (c *Client) GetPriceChange(ctx context.Context, symbol string) (models.RawQuote, error) {
	var raw models.RawQuote
	if err := c.get(ctx, "/market/price-change/"+url.PathEscape(symbol), nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to get price change for %s: %w", symbol, err)
	}
	return raw, nil
}

// GetRecommendations retrieves analyst recommendations for a symbol.
func (c *Client) GetRecommendations(ctx context.Context, symbol string) ([]models.RawQuote, error) {
	results, err := getList[models.RawQuote](ctx, c, "/market/recommendations/"+url.PathEscape(symbol), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations for %s: %w", symbol, err)
	}
	return results, nil
}
