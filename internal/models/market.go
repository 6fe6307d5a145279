// Package models defines data structures for the AcuTrader terminal client
package models

import (
	"time"
)

// RawQuote is a quote payload of unknown shape. Backends and providers disagree
// on field names, so raw payloads are decoded into a map and resolved into a
// Quote by the quote normalizer.
type RawQuote map[string]any

// Quote is the normalized, fixed-shape view of a symbol's live snapshot.
// Required display fields always carry a value (zero or "-" when the source
// had none); optional fundamentals are pointers so absence propagates to the
// insight rules that depend on them.
type Quote struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Change      float64 `json:"change"`
	ChangePct   float64 `json:"percent_change"`
	Currency    string  `json:"currency"`
	Exchange    string  `json:"exchange"`
	MarketState string  `json:"market_state"`
	LogoURL     string  `json:"logo_url"`
	MarketCap   float64 `json:"market_cap"`
	Volume      int64   `json:"volume"`

	Open          *float64 `json:"open,omitempty"`
	DayHigh       *float64 `json:"day_high,omitempty"`
	DayLow        *float64 `json:"day_low,omitempty"`
	PreviousClose *float64 `json:"previous_close,omitempty"`

	TrailingPE    *float64 `json:"trailing_pe,omitempty"`
	ForwardPE     *float64 `json:"forward_pe,omitempty"`
	EPSTrailing   *float64 `json:"eps_trailing,omitempty"`
	EPSForward    *float64 `json:"eps_forward,omitempty"`
	PriceToBook   *float64 `json:"price_to_book,omitempty"`
	BookValue     *float64 `json:"book_value,omitempty"`
	DividendRate  *float64 `json:"dividend_rate,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`
	Beta          *float64 `json:"beta,omitempty"`

	High52Week      *float64 `json:"high_52_week,omitempty"`
	Low52Week       *float64 `json:"low_52_week,omitempty"`
	Change52WeekPct *float64 `json:"change_52_week_pct,omitempty"`
	FiftyDayAvg     *float64 `json:"fifty_day_avg,omitempty"`
	TwoHundredAvg   *float64 `json:"two_hundred_day_avg,omitempty"`

	AvgVolume10Day  *float64 `json:"avg_volume_10_day,omitempty"`
	AvgVolume3Month *float64 `json:"avg_volume_3_month,omitempty"`

	AnalystRating string `json:"analyst_rating,omitempty"`

	Description string `json:"description,omitempty"`
}

// Bar represents a single period's OHLC data with optional precomputed
// indicator points supplied by the backend.
type Bar struct {
	Date       time.Time      `json:"date"`
	Open       float64        `json:"open"`
	High       float64        `json:"high"`
	Low        float64        `json:"low"`
	Close      float64        `json:"close"`
	Volume     int64          `json:"volume"`
	Indicators *BarIndicators `json:"indicators,omitempty"`
}

// BarIndicators carries indicator values for one bar. Any value may be absent;
// the chart renderer filters each series independently.
type BarIndicators struct {
	SMA20   *float64 `json:"sma20,omitempty"`
	EMA12   *float64 `json:"ema12,omitempty"`
	BBUpper *float64 `json:"bb_upper,omitempty"`
	BBLower *float64 `json:"bb_lower,omitempty"`
}

// ChartPeriod selects the bar interval for historical data.
type ChartPeriod string

const (
	PeriodDaily   ChartPeriod = "1d"
	PeriodWeekly  ChartPeriod = "1wk"
	PeriodMonthly ChartPeriod = "1mo"
)

// ParseChartPeriod maps user-facing period names onto query values.
// Unknown values fall back to daily.
func ParseChartPeriod(s string) ChartPeriod {
	switch s {
	case "weekly", "1wk", "w":
		return PeriodWeekly
	case "monthly", "1mo", "m":
		return PeriodMonthly
	default:
		return PeriodDaily
	}
}

// PricePoint is one point of an embedded sparkline series.
type PricePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MarketMover is one entry of the market-wide top-gainers/top-losers listings,
// which embed a small chart series alongside the quote fields.
type MarketMover struct {
	Symbol    string       `json:"symbol"`
	Name      string       `json:"name"`
	Price     float64      `json:"price"`
	Change    float64      `json:"change"`
	ChangePct float64      `json:"changesPercentage"`
	ChartData []PricePoint `json:"chartData,omitempty"`
}
