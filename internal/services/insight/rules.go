// Package insight derives qualitative fundamental and technical judgments
// from a normalized quote. Rules are pure, independent and evaluated in
// declaration order; a rule whose required fields are absent emits nothing.
package insight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/acutrader/acutrader-cli/internal/models"
)

// has reports whether an optional field carries a usable value. Zero counts
// as absent: providers emit 0 for fields they cannot populate.
func has(p *float64) bool {
	return p != nil && *p != 0
}

func formatEPS(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// rule evaluates one aspect of a quote, returning (insight, true) when its
// required fields are present.
type rule func(q *models.Quote) (models.Insight, bool)

var fundamentalRules = []rule{
	valuationOutlook,
	assetEfficiency,
	epsTrajectory,
	marketClassification,
	streetSentiment,
}

var technicalRules = []rule{
	longTermTrend,
	momentum,
	intradayVolatility,
	annualAlpha,
	relativeVolume,
}

func evaluate(q *models.Quote, rules []rule) []models.Insight {
	insights := make([]models.Insight, 0, len(rules))
	for _, r := range rules {
		if ins, ok := r(q); ok {
			insights = append(insights, ins)
		}
	}
	return insights
}

// Fundamental runs the fundamental rules in order.
func Fundamental(q *models.Quote) []models.Insight {
	return evaluate(q, fundamentalRules)
}

// Technical runs the technical rules in order.
func Technical(q *models.Quote) []models.Insight {
	return evaluate(q, technicalRules)
}

// Generate runs all rules, fundamentals first.
func Generate(q *models.Quote) []models.Insight {
	return append(Fundamental(q), Technical(q)...)
}

func valuationOutlook(q *models.Quote) (models.Insight, bool) {
	if !has(q.ForwardPE) || !has(q.TrailingPE) {
		// Placeholder rather than silence: the detail view always shows a
		// valuation line.
		return models.Insight{
			Label:  "Valuation",
			Value:  "Standard metrics unavailable",
			Status: models.StatusNeutral,
		}, true
	}

	if *q.ForwardPE < *q.TrailingPE {
		return models.Insight{
			Label:  "Valuation Outlook",
			Value:  fmt.Sprintf("Improving (Fwd PE %.1f < TTM)", *q.ForwardPE),
			Status: models.StatusPositive,
		}, true
	}
	return models.Insight{
		Label:  "Valuation Outlook",
		Value:  fmt.Sprintf("Premium (Fwd PE %.1f > TTM)", *q.ForwardPE),
		Status: models.StatusNeutral,
	}, true
}

func assetEfficiency(q *models.Quote) (models.Insight, bool) {
	if !has(q.PriceToBook) {
		return models.Insight{}, false
	}

	pb := *q.PriceToBook
	status := models.StatusNeutral
	desc := "Fair Value"
	switch {
	case pb < 1:
		status = models.StatusPositive
		desc = "Potentially Undervalued (<1.0)"
	case pb > 5:
		status = models.StatusNegative
		desc = "High Premium (>5.0)"
	}
	return models.Insight{
		Label:  "Asset Efficiency",
		Value:  fmt.Sprintf("%s (P/B %.2f)", desc, pb),
		Status: status,
	}, true
}

func epsTrajectory(q *models.Quote) (models.Insight, bool) {
	if !has(q.EPSForward) || !has(q.EPSTrailing) {
		return models.Insight{}, false
	}

	if *q.EPSForward > *q.EPSTrailing {
		return models.Insight{
			Label:  "EPS Trajectory",
			Value:  fmt.Sprintf("Growth Forecasted ($%s → $%s)", formatEPS(*q.EPSTrailing), formatEPS(*q.EPSForward)),
			Status: models.StatusPositive,
		}, true
	}
	return models.Insight{
		Label:  "EPS Trajectory",
		Value:  "Contraction Forecasted",
		Status: models.StatusNegative,
	}, true
}

func marketClassification(q *models.Quote) (models.Insight, bool) {
	cap := q.MarketCap
	desc := "Small Cap"
	switch {
	case cap > 200e9:
		desc = "Mega Cap (Stable)"
	case cap > 10e9:
		desc = "Large Cap (Established)"
	case cap > 2e9:
		desc = "Mid Cap (Growth)"
	}
	return models.Insight{
		Label:  "Market Classification",
		Value:  desc,
		Status: models.StatusNeutral,
	}, true
}

func streetSentiment(q *models.Quote) (models.Insight, bool) {
	rating := q.AnalystRating
	if rating == "" {
		rating = "N/A"
	}

	lower := strings.ToLower(rating)
	status := models.StatusNeutral
	if strings.Contains(lower, "buy") || strings.Contains(lower, "strong") {
		status = models.StatusPositive
	}
	return models.Insight{
		Label:  "Street Sentiment",
		Value:  rating,
		Status: status,
	}, true
}

func longTermTrend(q *models.Quote) (models.Insight, bool) {
	if !has(q.FiftyDayAvg) || !has(q.TwoHundredAvg) {
		return models.Insight{}, false
	}

	if *q.FiftyDayAvg > *q.TwoHundredAvg {
		return models.Insight{
			Label:  "Long-Term Trend",
			Value:  "Bullish Trend (50D > 200D is True)",
			Status: models.StatusPositive,
		}, true
	}
	return models.Insight{
		Label:  "Long-Term Trend",
		Value:  "Bearish Trend (50D > 200D is False)",
		Status: models.StatusNegative,
	}, true
}

func momentum(q *models.Quote) (models.Insight, bool) {
	if !has(q.High52Week) || q.Price == 0 {
		return models.Insight{}, false
	}

	diff := (*q.High52Week - q.Price) / *q.High52Week
	if diff < 0.05 {
		return models.Insight{
			Label:  "Momentum",
			Value:  "Strong (Trading near 52W High)",
			Status: models.StatusPositive,
		}, true
	}
	return models.Insight{
		Label:  "Momentum",
		Value:  fmt.Sprintf("Retracing (%.1f%% off High)", diff*100),
		Status: models.StatusNeutral,
	}, true
}

func intradayVolatility(q *models.Quote) (models.Insight, bool) {
	if !has(q.DayHigh) || !has(q.DayLow) || q.Price == 0 {
		return models.Insight{}, false
	}

	spread := (*q.DayHigh - *q.DayLow) / q.Price * 100
	if spread > 3 {
		return models.Insight{
			Label:  "Intraday Volatility",
			Value:  fmt.Sprintf("High (%.2f%% Swing)", spread),
			Status: models.StatusNegative,
		}, true
	}
	return models.Insight{
		Label:  "Intraday Volatility",
		Value:  fmt.Sprintf("Stable (%.2f%% Swing)", spread),
		Status: models.StatusNeutral,
	}, true
}

func annualAlpha(q *models.Quote) (models.Insight, bool) {
	ytd := 0.0
	if q.Change52WeekPct != nil {
		ytd = *q.Change52WeekPct
	}

	sign := ""
	if ytd > 0 {
		sign = "+"
	}
	status := models.StatusNeutral
	switch {
	case ytd > 10:
		status = models.StatusPositive
	case ytd < -10:
		status = models.StatusNegative
	}
	return models.Insight{
		Label:  "Annual Alpha",
		Value:  fmt.Sprintf("%s%.2f%% (1 Year Return)", sign, ytd),
		Status: status,
	}, true
}

func relativeVolume(q *models.Quote) (models.Insight, bool) {
	vol := float64(q.Volume)
	avgVol := vol
	if has(q.AvgVolume10Day) {
		avgVol = *q.AvgVolume10Day
	}

	relVol := 0.0
	if avgVol != 0 {
		relVol = vol / avgVol
	}

	status := models.StatusNeutral
	if relVol > 1.5 {
		status = models.StatusPositive
	}
	return models.Insight{
		Label:  "Relative Volume",
		Value:  fmt.Sprintf("%.2fx (vs 10-Day Avg)", relVol),
		Status: status,
	}, true
}
