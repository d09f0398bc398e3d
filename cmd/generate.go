package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/novasignals/growth-cli/internal/config"
	"github.com/novasignals/growth-cli/internal/dashboard"
	"github.com/novasignals/growth-cli/internal/metrics"
	"github.com/novasignals/growth-cli/internal/model"
	"github.com/novasignals/growth-cli/internal/report"
	"github.com/novasignals/growth-cli/internal/workbook"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the metrics snapshot and write the dashboard and report",
	Long: `Loads all source sheets from the growth workbook, runs the
reconciliation pipeline, and writes the HTML dashboard and text report.

Examples:
  # Use paths from config.yaml / environment
  growth-cli generate

  # Override the workbook and outputs
  growth-cli generate --workbook growth.xlsx --out-html dash.html --out-report report.txt`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("workbook", "", "path to the growth workbook (overrides config)")
	f.String("out-html", "", "dashboard output path (overrides config)")
	f.String("out-report", "", "text report output path (overrides config)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := zap.L().With(zap.String("command", "generate"))

	wbCfg := cfg.Workbook
	if v, _ := cmd.Flags().GetString("workbook"); v != "" {
		wbCfg.Path = v
	}
	outHTML := cfg.Output.HTML
	if v, _ := cmd.Flags().GetString("out-html"); v != "" {
		outHTML = v
	}
	outReport := cfg.Output.Report
	if v, _ := cmd.Flags().GetString("out-report"); v != "" {
		outReport = v
	}

	snap, err := buildSnapshot(ctx, wbCfg)
	if err != nil {
		return err
	}

	html, err := dashboard.Render(snap)
	if err != nil {
		return eris.Wrap(err, "generate: render dashboard")
	}
	if err := os.WriteFile(outHTML, html, 0644); err != nil {
		return eris.Wrapf(err, "generate: write %s", outHTML)
	}
	log.Info("generate: dashboard written", zap.String("path", outHTML))

	if err := os.WriteFile(outReport, []byte(report.Render(snap)), 0644); err != nil {
		return eris.Wrapf(err, "generate: write %s", outReport)
	}
	log.Info("generate: report written", zap.String("path", outReport))

	fmt.Printf("TAM:                %d (%d paying + %d pure leads)\n",
		snap.Revenue.TAM, snap.Combined.PayingUsers, snap.PremiumCampaign.PureLeads)
	fmt.Printf("Active MRR:         ₹%.0f\n", snap.Monthly.MRR)
	fmt.Printf("Funnel conversion:  %.1f%%\n", snap.Funnel.ConversionRate)
	fmt.Printf("Team members:       %d\n", snap.TeamPerformance.TotalMembers)
	fmt.Printf("Active users (30d): %d\n", snap.Activity.Active30d)
	fmt.Printf("\nDashboard: %s\nReport:    %s\n", outHTML, outReport)

	return nil
}

// buildSnapshot loads the workbook and runs the metrics pipeline.
func buildSnapshot(ctx context.Context, wbCfg config.WorkbookConfig) (*model.Snapshot, error) {
	src, err := workbook.Load(wbCfg)
	if err != nil {
		return nil, eris.Wrap(err, "load workbook")
	}

	snap, err := metrics.BuildSnapshot(ctx, src, metrics.Options{
		PodcastUnitPrice: cfg.Podcast.UnitPrice,
	})
	if err != nil {
		return nil, eris.Wrap(err, "build snapshot")
	}
	return snap, nil
}
