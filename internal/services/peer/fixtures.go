// Package peer provides the simulated peer comparison feature.
package peer

import "github.com/acutrader/acutrader-cli/internal/models"

// Simulated peers. The backend has no peer endpoint yet; these mirror the
// published demo accounts.
var peers = []models.Peer{
	{
		ID:     "peer1",
		Name:   "Alex Johnson",
		Avatar: "https://i.pravatar.cc/150?u=peer1",
		Holdings: []models.PeerHolding{
			{Symbol: "NVDA", Quantity: 20, AvgCost: 400, MarketPrice: 475, DailyChange: 2.1},
			{Symbol: "AMD", Quantity: 50, AvgCost: 100, MarketPrice: 115, DailyChange: 1.5},
		},
		PerformanceHistory: []models.PerformancePoint{
			{Month: "Jan", Value: 10000},
			{Month: "Feb", Value: 11500},
			{Month: "Mar", Value: 12100},
			{Month: "Apr", Value: 11800},
			{Month: "May", Value: 13500},
			{Month: "Jun", Value: 14200},
		},
	},
	{
		ID:     "peer2",
		Name:   "Sarah Lee",
		Avatar: "https://i.pravatar.cc/150?u=peer2",
		Holdings: []models.PeerHolding{
			{Symbol: "AAPL", Quantity: 15, AvgCost: 140, MarketPrice: 157, DailyChange: 0.8},
			{Symbol: "MSFT", Quantity: 10, AvgCost: 260, MarketPrice: 281, DailyChange: 0.2},
		},
		PerformanceHistory: []models.PerformancePoint{
			{Month: "Jan", Value: 10000},
			{Month: "Feb", Value: 10200},
			{Month: "Mar", Value: 10500},
			{Month: "Apr", Value: 10900},
			{Month: "May", Value: 11200},
			{Month: "Jun", Value: 11500},
		},
	},
	{
		ID:     "peer3",
		Name:   "Mike Chen",
		Avatar: "https://i.pravatar.cc/150?u=peer3",
		Holdings: []models.PeerHolding{
			{Symbol: "TSLA", Quantity: 5, AvgCost: 850, MarketPrice: 915, DailyChange: 1.7},
			{Symbol: "COIN", Quantity: 20, AvgCost: 80, MarketPrice: 75, DailyChange: -2.5},
		},
		PerformanceHistory: []models.PerformancePoint{
			{Month: "Jan", Value: 10000},
			{Month: "Feb", Value: 9500},
			{Month: "Mar", Value: 11000},
			{Month: "Apr", Value: 10500},
			{Month: "May", Value: 12000},
			{Month: "Jun", Value: 12800},
		},
	},
}

// userPerformanceHistory is the simulated history for the signed-in user.
var userPerformanceHistory = []models.PerformancePoint{
	{Month: "Jan", Value: 10000},
	{Month: "Feb", Value: 10800},
	{Month: "Mar", Value: 11200},
	{Month: "Apr", Value: 11500},
	{Month: "May", Value: 11900},
	{Month: "Jun", Value: 12500},
}
