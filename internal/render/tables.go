package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/acutrader/acutrader-cli/internal/models"
)

func newTable(w io.Writer, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	tw.AppendHeader(header)
	return tw
}

func colorPct(v float64, s string) string {
	if v > 0 {
		return text.Colors{text.FgGreen}.Sprint(s)
	}
	if v < 0 {
		return text.Colors{text.FgRed}.Sprint(s)
	}
	return s
}

// Holdings renders the portfolio positions table.
func Holdings(w io.Writer, holdings []models.HoldingValuation) {
	tw := newTable(w, table.Row{"SYMBOL", "QTY", "AVG COST", "PRICE", "CHG%", "VALUE", "DAY P&L", "UNREALIZED"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, h := range holdings {
		tw.AppendRow(table.Row{
			h.Symbol,
			Quantity(h.Quantity),
			Money(h.AvgCost),
			Money(h.Price),
			colorPct(h.ChangePct, Percent(h.ChangePct)),
			Money(h.MarketValue),
			colorPct(h.DailyPL, SignedMoney(h.DailyPL)),
			colorPct(h.UnrealizedPL, SignedMoney(h.UnrealizedPL)),
		})
	}
	tw.Render()
}

// Summary renders the account totals table.
func Summary(w io.Writer, s *models.PortfolioSummary) {
	tw := newTable(w, table.Row{"TOTAL VALUE", "DAY P&L", "DAY %", "COST BASIS", "CASH", "ACCOUNT"})
	tw.AppendRow(table.Row{
		Money(s.TotalValue),
		colorPct(s.TotalDailyPL, SignedMoney(s.TotalDailyPL)),
		colorPct(s.DailyPLPct, Percent(s.DailyPLPct)),
		Money(s.TotalCost),
		Money(s.AvailableCash),
		Money(s.AccountValue),
	})
	tw.Render()
}

// Allocation renders the allocation breakdown with an approximate share bar.
func Allocation(w io.Writer, slices []models.AllocationSlice, total float64) {
	tw := newTable(w, table.Row{"HOLDING", "VALUE", "SHARE"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for _, slice := range slices {
		share := 0.0
		if total > 0 {
			share = slice.Value / total * 100
		}
		tw.AppendRow(table.Row{slice.Name, Money(slice.Value), Percent(share)})
	}
	tw.Render()
}

// Movers renders a gainers or losers list.
func Movers(w io.Writer, title string, movers []models.Mover) {
	tw := newTable(w, table.Row{title, "PRICE", "CHG%"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for _, m := range movers {
		tw.AppendRow(table.Row{m.Symbol, Money(m.Price), colorPct(m.ChangePct, Percent(m.ChangePct))})
	}
	tw.Render()
}

// Quotes renders a screener listing.
func Quotes(w io.Writer, quotes []*models.Quote) {
	tw := newTable(w, table.Row{"SYMBOL", "NAME", "PRICE", "CHG%", "MKT CAP", "VOLUME", "EXCHANGE"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 32},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	for _, q := range quotes {
		tw.AppendRow(table.Row{
			q.Symbol,
			q.Name,
			Money(q.Price),
			colorPct(q.ChangePct, Percent(q.ChangePct)),
			Compact(q.MarketCap),
			Compact(float64(q.Volume)),
			q.Exchange,
		})
	}
	tw.Render()
}

// Transactions renders the trade ledger.
func Transactions(w io.Writer, txns []models.Transaction) {
	tw := newTable(w, table.Row{"DATE", "SYMBOL", "TYPE", "QTY", "PRICE", "TOTAL"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	for _, tx := range txns {
		typeCell := string(tx.Type)
		if tx.Type == models.TransactionBuy {
			typeCell = text.Colors{text.FgGreen}.Sprint(tx.Type)
		} else if tx.Type == models.TransactionSell {
			typeCell = text.Colors{text.FgRed}.Sprint(tx.Type)
		}
		tw.AppendRow(table.Row{
			Date(tx.Date),
			tx.Symbol,
			typeCell,
			Quantity(tx.Quantity),
			Money(tx.Price),
			Money(tx.Quantity * tx.Price),
		})
	}
	tw.Render()
}

// Watchlist renders watchlist membership with live quotes where available.
func Watchlist(w io.Writer, items []models.WatchlistItem, quotes map[string]*models.Quote) {
	tw := newTable(w, table.Row{"SYMBOL", "NAME", "PRICE", "CHG%"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, item := range items {
		name, price, pct := "-", "-", "-"
		var pctVal float64
		if q, ok := quotes[item.Symbol]; ok && q != nil {
			name = q.Name
			price = Money(q.Price)
			pct = Percent(q.ChangePct)
			pctVal = q.ChangePct
		}
		tw.AppendRow(table.Row{item.Symbol, name, price, colorPct(pctVal, pct)})
	}
	tw.Render()
}

// Insights renders the rule-derived judgments for a symbol.
func Insights(w io.Writer, title string, insights []models.Insight) {
	tw := newTable(w, table.Row{title, "FINDING", "STATUS"})
	for _, ins := range insights {
		status := string(ins.Status)
		switch ins.Status {
		case models.StatusPositive:
			status = text.Colors{text.FgGreen}.Sprint(ins.Status)
		case models.StatusNegative:
			status = text.Colors{text.FgRed}.Sprint(ins.Status)
		}
		tw.AppendRow(table.Row{ins.Label, ins.Value, status})
	}
	tw.Render()
}

// MarketMovers renders the market-wide gainers/losers listing with the
// embedded chart series as a sparkline trend column.
func MarketMovers(w io.Writer, title string, movers []models.MarketMover) {
	tw := newTable(w, table.Row{title, "NAME", "PRICE", "CHG%", "TREND"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 32},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, m := range movers {
		tw.AppendRow(table.Row{
			m.Symbol,
			m.Name,
			Money(m.Price),
			colorPct(m.ChangePct, Percent(m.ChangePct)),
			colorPct(m.ChangePct, Sparkline(m.ChartData)),
		})
	}
	tw.Render()
}

// Peers renders the peer directory.
func Peers(w io.Writer, peers []models.Peer) {
	tw := newTable(w, table.Row{"ID", "NAME", "HOLDINGS", "LATEST VALUE"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, p := range peers {
		latest := 0.0
		if n := len(p.PerformanceHistory); n > 0 {
			latest = p.PerformanceHistory[n-1].Value
		}
		tw.AppendRow(table.Row{p.ID, p.Name, len(p.Holdings), Money(latest)})
	}
	tw.Render()
}
