package portfolio

import (
	"sort"

	"github.com/acutrader/acutrader-cli/internal/models"
)

const (
	maxAllocationSlices = 5
	maxMovers           = 3
)

// TopAllocation ranks holdings by market value and keeps the top five; the
// remainder is folded into an "Others" slice appended only when its sum is
// positive. Ties keep the holdings' input order.
func TopAllocation(holdings []models.HoldingValuation) []models.AllocationSlice {
	ranked := make([]models.HoldingValuation, len(holdings))
	copy(ranked, holdings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MarketValue > ranked[j].MarketValue
	})

	slices := make([]models.AllocationSlice, 0, maxAllocationSlices+1)
	others := 0.0
	for i, h := range ranked {
		if i < maxAllocationSlices {
			slices = append(slices, models.AllocationSlice{Name: h.Symbol, Value: h.MarketValue})
			continue
		}
		others += h.MarketValue
	}
	if others > 0 {
		slices = append(slices, models.AllocationSlice{Name: "Others", Value: others})
	}
	return slices
}

// TopMovers splits holdings into today's top gainers and losers, three each.
// Gainers require a strictly positive change, losers strictly negative; neither
// list is padded, and no symbol appears in both.
func TopMovers(holdings []models.HoldingValuation) (gainers, losers []models.Mover) {
	ranked := make([]models.HoldingValuation, len(holdings))
	copy(ranked, holdings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ChangePct > ranked[j].ChangePct
	})

	for _, h := range ranked {
		if h.ChangePct <= 0 || len(gainers) == maxMovers {
			break
		}
		gainers = append(gainers, models.Mover{Symbol: h.Symbol, ChangePct: h.ChangePct, Price: h.Price})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ChangePct < ranked[j].ChangePct
	})
	for _, h := range ranked {
		if h.ChangePct >= 0 || len(losers) == maxMovers {
			break
		}
		losers = append(losers, models.Mover{Symbol: h.Symbol, ChangePct: h.ChangePct, Price: h.Price})
	}

	return gainers, losers
}
