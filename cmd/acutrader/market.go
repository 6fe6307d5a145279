package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acutrader/acutrader-cli/internal/models"
	"github.com/acutrader/acutrader-cli/internal/render"
	"github.com/acutrader/acutrader-cli/internal/services/chart"
	"github.com/acutrader/acutrader-cli/internal/services/insight"
	"github.com/acutrader/acutrader-cli/internal/services/market"
	"github.com/acutrader/acutrader-cli/internal/services/peer"
)

func newStocksCmd() *cobra.Command {
	var (
		exchange   string
		currency   string
		trend      string
		minPrice   float64
		maxPrice   float64
		minCap     float64
		sortBy     string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "stocks [QUERY]",
		Short: "Screen stocks: trending by default, or search by query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				quotes []*models.Quote
				err    error
			)
			if len(args) == 1 {
				quotes, err = application.Market.Search(cmd.Context(), args[0])
			} else {
				quotes, err = application.Market.Trending(cmd.Context())
			}
			if err != nil {
				return err
			}

			filters := market.Filters{
				Exchange:     exchange,
				Currency:     currency,
				Trend:        market.Trend(trend),
				MinPrice:     minPrice,
				MaxPrice:     maxPrice,
				MinMarketCap: minCap,
				SortBy:       market.SortKey(sortBy),
				Descending:   descending,
			}
			quotes = filters.Apply(quotes)

			if len(quotes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching stocks.")
				return nil
			}
			render.Quotes(cmd.OutOrStdout(), quotes)
			return nil
		},
	}

	cmd.Flags().StringVar(&exchange, "exchange", "", "filter by exchange (substring match)")
	cmd.Flags().StringVar(&currency, "currency", "", "filter by currency")
	cmd.Flags().StringVar(&trend, "trend", "", "filter by trend: UP or DOWN")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, fmt.Sprintf("maximum price (%d = unbounded)", market.PriceUnbounded))
	cmd.Flags().Float64Var(&minCap, "min-cap", 0, "minimum market cap")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by: price, change or volume")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort descending")
	return cmd
}

func newStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock QUERY",
		Short: "Quote detail with fundamental and technical findings",
		Long:  "Shows the detail view for a symbol. Free-text queries resolve via search,\npreferring an exact symbol match over the first result.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := application.Quotes.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s — %s\n", q.Symbol, q.Name)
			fmt.Fprintf(out, "%s  %s (%s)  %s · %s · %s\n\n",
				render.Money(q.Price), render.Percent(q.ChangePct), render.SignedMoney(q.Change),
				q.Exchange, q.Currency, q.MarketState)
			fmt.Fprintf(out, "Market Cap %s · Volume %s\n\n", render.Compact(q.MarketCap), render.Compact(float64(q.Volume)))

			render.Insights(out, "FUNDAMENTAL", insight.Fundamental(q))
			fmt.Fprintln(out)
			render.Insights(out, "TECHNICAL", insight.Technical(q))
			return nil
		},
	}
}

func newChartCmd() *cobra.Command {
	var (
		period string
		outArg string
	)

	cmd := &cobra.Command{
		Use:   "chart SYMBOL",
		Short: "Render a price chart with indicator overlays to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := args[0]
			prepared, err := application.Charts.Get(cmd.Context(), symbol, models.ParseChartPeriod(period))
			if err != nil {
				return err
			}

			png, err := chart.RenderPNG(symbol, prepared)
			if err != nil {
				return err
			}

			outPath := outArg
			if outPath == "" {
				outPath = fmt.Sprintf("%s-%s.png", symbol, models.ParseChartPeriod(period))
			}
			if err := os.WriteFile(outPath, png, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s (%d bars)\n", outPath, len(prepared.Bars))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "daily", "bar interval: daily, weekly or monthly")
	cmd.Flags().StringVarP(&outArg, "out", "o", "", "output PNG path")
	return cmd
}

func newMoversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "movers",
		Short: "Market-wide top gainers and losers",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview := application.Market.GetOverview(cmd.Context())

			out := cmd.OutOrStdout()
			if len(overview.Gainers) == 0 && len(overview.Losers) == 0 {
				fmt.Fprintln(out, "No market movers available.")
				return nil
			}
			if len(overview.Gainers) > 0 {
				render.MarketMovers(out, "TOP GAINERS", overview.Gainers)
				fmt.Fprintln(out)
			}
			if len(overview.Losers) > 0 {
				render.MarketMovers(out, "TOP LOSERS", overview.Losers)
			}
			return nil
		},
	}
}

func newPeersCmd() *cobra.Command {
	var outArg string

	cmd := &cobra.Command{
		Use:   "peers [ID]",
		Short: "List peers, or compare your performance against one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				render.Peers(out, peer.List())
				return nil
			}

			p, err := peer.Get(args[0])
			if err != nil {
				return err
			}

			points := peer.Compare(p)
			png, err := peer.RenderComparisonPNG(p, points)
			if err != nil {
				return err
			}

			outPath := outArg
			if outPath == "" {
				outPath = fmt.Sprintf("vs-%s.png", p.ID)
			}
			if err := os.WriteFile(outPath, png, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Fprintf(out, "Comparison with %s written to %s\n", p.Name, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outArg, "out", "o", "", "output PNG path")
	return cmd
}
