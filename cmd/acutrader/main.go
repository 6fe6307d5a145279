// acutrader is a terminal client for the AcuTrader simulated trading backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acutrader/acutrader-cli/internal/app"
	"github.com/acutrader/acutrader-cli/internal/common"
)

var (
	cfgPath string

	application *app.App
)

func main() {
	root := &cobra.Command{
		Use:           "acutrader",
		Short:         "Terminal dashboard for the AcuTrader simulated trading backend",
		Version:       common.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			if cfgPath != "" {
				paths = append(paths, cfgPath)
			}
			cfg, err := common.LoadConfig(paths...)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger := common.NewLogger(cfg.Logging.Level)
			application, err = app.New(cfg, logger)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if application != nil {
				return application.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (TOML)")

	root.AddCommand(
		newLoginCmd(),
		newSignupCmd(),
		newLogoutCmd(),
		newDashboardCmd(),
		newPortfolioCmd(),
		newTransactionsCmd(),
		newWatchlistCmd(),
		newStocksCmd(),
		newStockCmd(),
		newChartCmd(),
		newMoversCmd(),
		newPeersCmd(),
		newBuyCmd(),
		newSellCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
