// ABOUTME: CLI command for showing one logged day in detail.
// ABOUTME: Prints metric values with units plus the day's vital score.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/summit/internal/models"
	"github.com/harperreed/summit/internal/storage"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show one day in detail",
	Long: `Show everything logged for a date: each metric value with its unit,
and the day's vital score with components if one was logged.

EXAMPLES:

  summit show 2025-01-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]

		m, err := db.GetMetric(date)
		if err != nil && !storage.IsNotFound(err) {
			return fmt.Errorf("failed to get metrics: %w", err)
		}

		score, err := db.GetVitalScore(date)
		if err != nil && !storage.IsNotFound(err) {
			return fmt.Errorf("failed to get vital score: %w", err)
		}

		if m == nil && score == nil {
			fmt.Printf("Nothing logged for %s.\n", date)
			return nil
		}

		color.New(color.Bold).Println(date)

		if m != nil {
			fmt.Println()
			for _, f := range models.AllMetricFields {
				v := m.FieldValue(f)
				if v == nil {
					continue
				}
				fmt.Printf("  %s %d %s\n", padRight(string(f), 24), *v, models.MetricFieldUnits[f])
			}
		}

		if score != nil {
			fmt.Println()
			var parts []string
			if score.SleepComponent != nil {
				parts = append(parts, fmt.Sprintf("sleep %d", *score.SleepComponent))
			}
			if score.RecoveryComponent != nil {
				parts = append(parts, fmt.Sprintf("recovery %d", *score.RecoveryComponent))
			}
			if score.StrainComponent != nil {
				parts = append(parts, fmt.Sprintf("strain %d", *score.StrainComponent))
			}
			line := fmt.Sprintf("Vital score: %d/100", score.Score)
			if len(parts) > 0 {
				line += " (" + strings.Join(parts, ", ") + ")"
			}
			fmt.Println("  " + line)
			if score.Recommendation != nil && *score.Recommendation != "" {
				fmt.Printf("  %s\n", color.New(color.Faint).Sprint(*score.Recommendation))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
