// Package quote normalizes provider-dependent quote payloads and fans out
// multi-symbol fetches.
package quote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// Alias chains, first defined non-null value wins. The backend proxies several
// upstream providers and each names the same field differently.
var (
	nameAliases      = []string{"displayName", "shortName", "longName", "name", "instrument_name"}
	priceAliases     = []string{"regularMarketPrice", "current_price", "price"}
	changeAliases    = []string{"regularMarketChange", "change"}
	changePctAliases = []string{"percent_change", "regularMarketChangePercent", "changesPercentage"}
	marketCapAliases = []string{"market_cap", "mktCap", "marketCap"}
	volumeAliases    = []string{"regularMarketVolume", "volume"}
	exchangeAliases  = []string{"fullExchangeName", "exchange"}
	logoAliases      = []string{"logo", "image"}
)

const fallbackLogoURL = "https://financialmodelingprep.com/image-stock/%s.png"

// asFloat coerces the values JSON decoding can produce for a number. Numeric
// strings are parsed best-effort; anything else counts as absent.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func firstString(raw models.RawQuote, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func firstFloat(raw models.RawQuote, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if f, ok := asFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// floatPtr resolves optional fundamentals: absent stays nil so dependent
// insight rules skip instead of reading a fabricated zero.
func floatPtr(raw models.RawQuote, keys ...string) *float64 {
	if f, ok := firstFloat(raw, keys...); ok {
		return &f
	}
	return nil
}

// Normalize resolves a raw payload into the fixed-shape Quote. symbol is the
// caller's fallback when the payload itself carries none. Never fails: missing
// required fields resolve to zero values or display placeholders.
func Normalize(symbol string, raw models.RawQuote) *models.Quote {
	q := &models.Quote{Symbol: symbol}
	if raw == nil {
		raw = models.RawQuote{}
	}

	if s, ok := firstString(raw, "symbol"); ok {
		q.Symbol = s
	}

	if name, ok := firstString(raw, nameAliases...); ok {
		q.Name = name
	} else {
		q.Name = q.Symbol
	}

	q.Price, _ = firstFloat(raw, priceAliases...)
	q.Change, _ = firstFloat(raw, changeAliases...)
	q.ChangePct, _ = firstFloat(raw, changePctAliases...)
	q.MarketCap, _ = firstFloat(raw, marketCapAliases...)

	if vol, ok := firstFloat(raw, volumeAliases...); ok {
		q.Volume = int64(vol)
	}

	if currency, ok := firstString(raw, "currency"); ok {
		q.Currency = currency
	} else {
		q.Currency = "USD"
	}

	if exchange, ok := firstString(raw, exchangeAliases...); ok {
		q.Exchange = exchange
	} else {
		q.Exchange = "-"
	}

	if state, ok := firstString(raw, "marketState"); ok {
		q.MarketState = state
	} else {
		q.MarketState = "CLOSED"
	}

	if logo, ok := firstString(raw, logoAliases...); ok {
		q.LogoURL = logo
	} else {
		q.LogoURL = fmt.Sprintf(fallbackLogoURL, strings.ToUpper(q.Symbol))
	}

	q.Open = floatPtr(raw, "regularMarketOpen", "open")
	q.DayHigh = floatPtr(raw, "regularMarketDayHigh", "dayHigh")
	q.DayLow = floatPtr(raw, "regularMarketDayLow", "dayLow")
	q.PreviousClose = floatPtr(raw, "regularMarketPreviousClose", "previousClose")

	q.TrailingPE = floatPtr(raw, "trailingPE", "pe")
	q.ForwardPE = floatPtr(raw, "forwardPE")
	q.EPSTrailing = floatPtr(raw, "epsTrailingTwelveMonths", "eps")
	q.EPSForward = floatPtr(raw, "epsForward")
	q.PriceToBook = floatPtr(raw, "priceToBook")
	q.BookValue = floatPtr(raw, "bookValue")
	q.DividendRate = floatPtr(raw, "dividendRate")
	q.DividendYield = floatPtr(raw, "dividendYield")
	q.Beta = floatPtr(raw, "beta")

	q.High52Week = floatPtr(raw, "fiftyTwoWeekHigh", "yearHigh")
	q.Low52Week = floatPtr(raw, "fiftyTwoWeekLow", "yearLow")
	q.Change52WeekPct = floatPtr(raw, "fiftyTwoWeekChangePercent")
	q.FiftyDayAvg = floatPtr(raw, "fiftyDayAverage", "priceAvg50")
	q.TwoHundredAvg = floatPtr(raw, "twoHundredDayAverage", "priceAvg200")

	q.AvgVolume10Day = floatPtr(raw, "averageDailyVolume10Day")
	q.AvgVolume3Month = floatPtr(raw, "averageDailyVolume3Month", "avgVolume")

	q.AnalystRating, _ = firstString(raw, "averageAnalystRating", "analystRating")
	q.Description, _ = firstString(raw, "longBusinessSummary", "description")

	return q
}
