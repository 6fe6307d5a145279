package models

// PeerHolding is one position of a peer's published portfolio snapshot.
type PeerHolding struct {
	Symbol      string  `json:"symbol"`
	Quantity    float64 `json:"quantity"`
	AvgCost     float64 `json:"avgCost"`
	MarketPrice float64 `json:"marketPrice"`
	DailyChange float64 `json:"dailyChange"`
}

// PerformancePoint is one month of a portfolio value history.
type PerformancePoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Peer is another trader the user can compare performance against.
type Peer struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Avatar             string             `json:"avatar"`
	Holdings           []PeerHolding      `json:"holdings"`
	PerformanceHistory []PerformancePoint `json:"performanceHistory"`
}

// PeerComparisonPoint aligns the user's and a peer's value for one month.
// PeerValue is nil when the peer history is shorter than the user's.
type PeerComparisonPoint struct {
	Month     string   `json:"month"`
	UserValue float64  `json:"user_value"`
	PeerValue *float64 `json:"peer_value,omitempty"`
}
