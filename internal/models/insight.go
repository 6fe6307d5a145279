package models

// InsightStatus is the qualitative tag attached to an insight.
type InsightStatus string

const (
	StatusPositive InsightStatus = "positive"
	StatusNeutral  InsightStatus = "neutral"
	StatusNegative InsightStatus = "negative"
)

// Insight is a short rule-derived judgment about a quote's fundamentals or
// technicals. Derived and ephemeral; recomputed from the current Quote.
type Insight struct {
	Label  string        `json:"label"`
	Value  string        `json:"value"`
	Status InsightStatus `json:"status"`
}
