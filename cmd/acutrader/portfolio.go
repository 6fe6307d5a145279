package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acutrader/acutrader-cli/internal/render"
	"github.com/acutrader/acutrader-cli/internal/services/portfolio"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Portfolio summary, allocation and today's movers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := application.RequireSession(); err != nil {
				return err
			}

			summary, err := application.Portfolio.GetSummary(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			render.Summary(out, summary)
			fmt.Fprintln(out)

			if len(summary.Holdings) == 0 {
				fmt.Fprintln(out, "No holdings yet. Buy your first stock with 'acutrader buy SYMBOL QTY'.")
				return nil
			}

			render.Allocation(out, portfolio.TopAllocation(summary.Holdings), summary.TotalValue)
			fmt.Fprintln(out)

			gainers, losers := portfolio.TopMovers(summary.Holdings)
			if len(gainers) > 0 {
				render.Movers(out, "TOP GAINERS", gainers)
				fmt.Fprintln(out)
			}
			if len(losers) > 0 {
				render.Movers(out, "TOP LOSERS", losers)
			}
			return nil
		},
	}
}

func newPortfolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "List holdings with live valuations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := application.RequireSession(); err != nil {
				return err
			}

			summary, err := application.Portfolio.GetSummary(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summary.Holdings) == 0 {
				fmt.Fprintln(out, "No holdings.")
				return nil
			}
			render.Holdings(out, summary.Holdings)
			fmt.Fprintln(out)
			render.Summary(out, summary)
			return nil
		},
	}
}

func newTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "Show the trade ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := application.RequireSession(); err != nil {
				return err
			}

			txns, err := application.Client.GetTransactions(cmd.Context())
			if err != nil {
				return err
			}

			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}
			render.Transactions(cmd.OutOrStdout(), txns)
			return nil
		},
	}
}

func newWatchlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Show the watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := application.RequireSession(); err != nil {
				return err
			}

			if err := application.Watchlist.Refresh(cmd.Context()); err != nil {
				return err
			}

			items := application.Watchlist.Items()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Watchlist is empty.")
				return nil
			}

			symbols := make([]string, len(items))
			for i, item := range items {
				symbols[i] = item.Symbol
			}
			quotes := application.Quotes.GetQuotes(cmd.Context(), symbols)
			render.Watchlist(cmd.OutOrStdout(), items, quotes)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle SYMBOL",
		Short: "Add or remove a symbol from the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := application.RequireSession(); err != nil {
				return err
			}

			if err := application.Watchlist.Refresh(cmd.Context()); err != nil {
				return err
			}

			member, err := application.Watchlist.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if member {
				fmt.Fprintf(cmd.OutOrStdout(), "%s added to watchlist\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s removed from watchlist\n", args[0])
			}
			return nil
		},
	})

	return cmd
}
