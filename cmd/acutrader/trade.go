package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/acutrader/acutrader-cli/internal/render"
)

func parseQuantity(arg string) (float64, error) {
	qty, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", arg)
	}
	return qty, nil
}

func newBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy SYMBOL QTY",
		Short: "Buy shares at the current market price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := application.RequireSession(); err != nil {
				return err
			}

			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			q, err := application.Quotes.GetQuote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if q.Price <= 0 {
				return fmt.Errorf("no market price available for %s", q.Symbol)
			}

			result, err := application.Trade.Buy(cmd.Context(), q.Symbol, qty, q.Price)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bought %s %s at %s (total %s)\n",
				render.Quantity(qty), q.Symbol, render.Money(q.Price), render.Money(qty*q.Price))
			fmt.Fprintf(out, "You now hold %d positions.\n", len(result.Holdings))
			return nil
		},
	}
}

func newSellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sell SYMBOL QTY",
		Short: "Sell shares at the current market price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := application.RequireSession(); err != nil {
				return err
			}

			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			holdings, err := application.Client.GetPortfolio(cmd.Context())
			if err != nil {
				return err
			}

			q, err := application.Quotes.GetQuote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if q.Price <= 0 {
				return fmt.Errorf("no market price available for %s", q.Symbol)
			}

			result, err := application.Trade.Sell(cmd.Context(), holdings, q.Symbol, qty, q.Price)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sold %s %s at %s (total %s)\n",
				render.Quantity(qty), q.Symbol, render.Money(q.Price), render.Money(qty*q.Price))
			fmt.Fprintf(out, "You now hold %d positions.\n", len(result.Holdings))
			return nil
		},
	}
}
