package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/novasignals/growth-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "growth-cli",
	Short: "Growth metrics reconciliation engine",
	Long:  "Reconciles lifetime, monthly, podcast, campaign, and sales-funnel records into one consistent set of growth metrics: TAM, recurring revenue, churn, funnel conversion, and team attribution.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
