package models

import "time"

// Holding is a user's owned position: symbol, share count and cost basis.
// Mutated only by trades executed on the backend; the client holds a
// read-mostly cached copy refreshed after each trade.
type Holding struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	AvgCost  float64 `json:"avgCost"`
}

// TransactionType distinguishes the two ledger entry kinds.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// Transaction is one entry of the backend's append-only trade ledger.
type Transaction struct {
	ID       string          `json:"id,omitempty"`
	Symbol   string          `json:"symbol"`
	Type     TransactionType `json:"type"`
	Quantity float64         `json:"quantity"`
	Price    float64         `json:"price"`
	Date     string          `json:"date"`
}

// WatchlistItem is one watched symbol. Set semantics are enforced by the
// backend; the client mirrors membership locally for O(1) lookups.
type WatchlistItem struct {
	Symbol  string    `json:"symbol"`
	AddedAt time.Time `json:"addedAt,omitempty"`
}

// HoldingValuation is a holding enriched with its current quote-derived values.
type HoldingValuation struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AvgCost      float64 `json:"avg_cost"`
	Price        float64 `json:"price"`
	ChangePct    float64 `json:"change_pct"`
	MarketValue  float64 `json:"market_value"`
	DailyPL      float64 `json:"daily_pl"`
	UnrealizedPL float64 `json:"unrealized_pl"`
}

// PortfolioSummary aggregates a user's holdings against current quotes.
type PortfolioSummary struct {
	Holdings      []HoldingValuation `json:"holdings"`
	TotalValue    float64            `json:"total_value"`
	TotalDailyPL  float64            `json:"total_daily_pl"`
	DailyPLPct    float64            `json:"daily_pl_pct"`
	TotalCost     float64            `json:"total_cost"`
	AvailableCash float64            `json:"available_cash"`
	AccountValue  float64            `json:"account_value"`
}

// AllocationSlice is one wedge of the allocation breakdown. Name is a symbol,
// or "Others" for the aggregated remainder beyond the top five.
type AllocationSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Mover is a holding ranked by its percent change.
type Mover struct {
	Symbol    string  `json:"symbol"`
	ChangePct float64 `json:"change_pct"`
	Price     float64 `json:"price"`
}
