// ABOUTME: CLI commands for managing detected trends.
// ABOUTME: Supports set, list, and delete subcommands keyed by metric and timeframe.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/summit/internal/models"
	"github.com/harperreed/summit/internal/storage"
	"github.com/spf13/cobra"
)

var (
	trendBaseline float64
	trendCurrent  float64
)

var trendCmd = &cobra.Command{
	Use:     "trend",
	Aliases: []string{"t"},
	Short:   "Manage detected trends",
	Long: `Track directional changes in a metric over a timeframe.

A trend compares the current window's average against a baseline window.
Summit derives the percent change and direction (up/down/flat) from the
two averages; you supply the averages. Each (metric, timeframe) pair
holds one trend, and recording again overwrites the previous detection.

Timeframes are 7d, 30d, or 90d. The metric name usually matches a daily
metric column (resting_hr, steps, hrv_avg, ...) but is freeform.

COMMANDS:

  set      Record a trend for a metric and timeframe
  list     List all detected trends
  delete   Delete the trend for a metric and timeframe`,
}

var trendSetCmd = &cobra.Command{
	Use:   "set <metric> <timeframe>",
	Short: "Record a trend for a metric and timeframe",
	Long: `Record a detected trend. Percent change and direction are derived
from --baseline and --current.

Examples:
  summit trend set resting_hr 7d --baseline 52 --current 48.5
  summit trend set steps 30d --baseline 8200 --current 9100`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, timeframe := args[0], args[1]

		if !models.IsValidTimeframe(timeframe) {
			return fmt.Errorf("unknown timeframe: %s (use 7d, 30d, or 90d)", timeframe)
		}

		tr := models.NewTrend(metric, models.Timeframe(timeframe), trendBaseline, trendCurrent)
		if err := db.UpsertTrend(tr); err != nil {
			return fmt.Errorf("failed to record trend: %w", err)
		}

		color.Green("✓ Recorded trend for %s over %s", metric, timeframe)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("%+.1f%% (%s)", tr.PercentChange, tr.Direction))
		return nil
	},
}

var trendListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all detected trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		trends, err := db.ListTrends()
		if err != nil {
			return fmt.Errorf("failed to list trends: %w", err)
		}

		if len(trends) == 0 {
			fmt.Println("No trends found.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Println(faint.Sprintf("%s  %s  %s  %s  %s",
			padRight("METRIC", 18), padRight("TF", 3),
			padLeft("CHANGE", 7), padRight("DIR", 4), "DETECTED"))
		for _, tr := range trends {
			fmt.Printf("%s  %s  %s  %s  %s\n",
				padRight(tr.Metric, 18),
				padRight(tr.Timeframe, 3),
				padLeft(fmt.Sprintf("%+.1f%%", tr.PercentChange), 7),
				padRight(tr.Direction, 4),
				faint.Sprint(tr.DetectedAt.Format("2006-01-02 15:04")))
		}

		return nil
	},
}

var trendDeleteCmd = &cobra.Command{
	Use:     "delete <metric> <timeframe>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete the trend for a metric and timeframe",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, timeframe := args[0], args[1]

		if err := db.DeleteTrend(metric, timeframe); err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("no trend recorded for %s over %s", metric, timeframe)
			}
			return fmt.Errorf("failed to delete trend: %w", err)
		}

		color.Yellow("✗ Deleted trend for %s over %s", metric, timeframe)
		return nil
	},
}

func init() {
	trendSetCmd.Flags().Float64Var(&trendBaseline, "baseline", 0, "prior-window average")
	trendSetCmd.Flags().Float64Var(&trendCurrent, "current", 0, "current-window average")
	_ = trendSetCmd.MarkFlagRequired("baseline")
	_ = trendSetCmd.MarkFlagRequired("current")

	trendCmd.AddCommand(trendSetCmd)
	trendCmd.AddCommand(trendListCmd)
	trendCmd.AddCommand(trendDeleteCmd)
	rootCmd.AddCommand(trendCmd)
}
