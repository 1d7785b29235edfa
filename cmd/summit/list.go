// ABOUTME: CLI command for listing daily health metrics.
// ABOUTME: Prints a fixed-width table, newest day first.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/summit/internal/models"
	"github.com/spf13/cobra"
)

var (
	listLimit int
	listFrom  string
	listTo    string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List daily health metrics",
	Long: `List logged days from the summit store, newest first.

OUTPUT FORMAT:

  Each line shows: DATE  SLEEP  HOURS  BATT  STRESS  RHR  HRV  INT  STEPS

  HOURS is total sleep duration converted to hours. Columns that were
  never logged for a day show "-".

EXAMPLES:

  summit list                                  # Last 20 days
  summit list -n 7                             # Last 7 days
  summit list --from 2025-01-01 --to 2025-01-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var metrics []*models.Metric
		var err error

		if listFrom != "" || listTo != "" {
			if listFrom == "" || listTo == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			metrics, err = db.ListMetricsRange(listFrom, listTo)
		} else {
			metrics, err = db.ListMetrics(listLimit)
		}
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}

		if len(metrics) == 0 {
			fmt.Println("No metrics found.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Println(faint.Sprintf("%-10s  %s  %s  %s  %s  %s  %s  %s  %s",
			"DATE",
			padLeft("SLEEP", 5), padLeft("HOURS", 5), padLeft("BATT", 4),
			padLeft("STRESS", 6), padLeft("RHR", 3), padLeft("HRV", 3),
			padLeft("INT", 4), padLeft("STEPS", 6)))
		for _, m := range metrics {
			fmt.Printf("%-10s  %s  %s  %s  %s  %s  %s  %s  %s\n",
				m.Date,
				cell(m.SleepScore, 5), hoursCell(m.SleepDurationSeconds, 5),
				cell(m.BodyBattery, 4), cell(m.StressAvg, 6),
				cell(m.RestingHR, 3), cell(m.HRVAvg, 3),
				cell(m.IntensityMinutes, 4), cell(m.Steps, 6))
		}

		return nil
	},
}

func cell(v *int, width int) string {
	if v == nil {
		return padLeft("-", width)
	}
	return padLeft(strconv.Itoa(*v), width)
}

func hoursCell(seconds *int, width int) string {
	if seconds == nil {
		return padLeft("-", width)
	}
	return padLeft(fmt.Sprintf("%.1f", float64(*seconds)/3600), width)
}

func padLeft(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(" ", length-len(s)) + s
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of days")
	listCmd.Flags().StringVar(&listFrom, "from", "", "range start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "range end date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}
