package market

import (
	"sort"
	"strings"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// PriceUnbounded marks the max-price filter as open-ended. The screener's
// price slider tops out at 1000 and its maximum means "no upper bound".
const PriceUnbounded = 1000

// Trend filters screener rows by the sign of their percent change.
type Trend string

const (
	TrendAny  Trend = ""
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
)

// SortKey selects the screener sort column.
type SortKey string

const (
	SortNone   SortKey = ""
	SortPrice  SortKey = "price"
	SortChange SortKey = "change"
	SortVolume SortKey = "volume"
)

// Filters narrows and orders a screener listing.
type Filters struct {
	Exchange     string
	Currency     string
	Trend        Trend
	MinPrice     float64
	MaxPrice     float64
	MinMarketCap float64
	SortBy       SortKey
	Descending   bool
}

func (f Filters) matches(q *models.Quote) bool {
	if f.Exchange != "" && !strings.Contains(strings.ToLower(q.Exchange), strings.ToLower(f.Exchange)) {
		return false
	}
	if f.Currency != "" && !strings.EqualFold(q.Currency, f.Currency) {
		return false
	}
	switch f.Trend {
	case TrendUp:
		if q.ChangePct <= 0 {
			return false
		}
	case TrendDown:
		if q.ChangePct >= 0 {
			return false
		}
	}
	if q.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && f.MaxPrice < PriceUnbounded && q.Price > f.MaxPrice {
		return false
	}
	if q.MarketCap < f.MinMarketCap {
		return false
	}
	return true
}

// Apply filters and sorts a listing. Sorting is stable so equal keys keep the
// backend's listing order.
func (f Filters) Apply(quotes []*models.Quote) []*models.Quote {
	filtered := make([]*models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if f.matches(q) {
			filtered = append(filtered, q)
		}
	}

	if f.SortBy == SortNone {
		return filtered
	}

	key := func(q *models.Quote) float64 {
		switch f.SortBy {
		case SortPrice:
			return q.Price
		case SortChange:
			return q.ChangePct
		case SortVolume:
			return float64(q.Volume)
		}
		return 0
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if f.Descending {
			return key(filtered[i]) > key(filtered[j])
		}
		return key(filtered[i]) < key(filtered[j])
	})

	return filtered
}
