// ABOUTME: CLI command for logging daily health metrics.
// ABOUTME: One flag per metric column; merges into an existing day with --update.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/summit/internal/models"
	"github.com/harperreed/summit/internal/storage"
	"github.com/spf13/cobra"
)

var (
	addDate          string
	addUpdate        bool
	addSleepScore    int
	addSleepDuration int
	addDeepSleep     int
	addRemSleep      int
	addBodyBattery   int
	addStress        int
	addRestingHR     int
	addHRV           int
	addIntensity     int
	addSteps         int
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Log daily health metrics",
	Long: `Log health metrics for a day. Each metric column has its own flag;
omitted flags are left unset. The date defaults to today.

A day can only be logged once. Re-running with --update merges the given
values into the existing day, overwriting only the flags you pass.

EXAMPLES:

  summit add --steps 12000 --resting-hr 48
  summit add --date 2025-01-15 --sleep-score 82 --sleep-duration 27360
  summit add --date 2025-01-15 --hrv 52 --update`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := addDate
		if date == "" {
			date = time.Now().Format(models.DateFormat)
		}

		m := models.NewMetric(date)
		set := applyMetricFlags(cmd, m)
		if set == 0 {
			return fmt.Errorf("no metric values given (use flags like --steps or --resting-hr)")
		}

		err := db.CreateMetric(m)
		if err == nil {
			color.Green("✓ Added metrics for %s", date)
			fmt.Printf("  %s\n", color.New(color.Faint).Sprint(summarizeMetric(m)))
			return nil
		}
		if !storage.IsConstraintViolation(err) {
			return fmt.Errorf("failed to add metrics: %w", err)
		}
		if !addUpdate {
			return fmt.Errorf("metrics for %s already exist (re-run with --update to merge)", date)
		}

		existing, err := db.GetMetric(date)
		if err != nil {
			return fmt.Errorf("failed to load existing metrics: %w", err)
		}
		applyMetricFlags(cmd, existing)
		if err := db.UpdateMetric(existing); err != nil {
			return fmt.Errorf("failed to update metrics: %w", err)
		}

		color.Green("✓ Updated metrics for %s", date)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(summarizeMetric(existing)))
		return nil
	},
}

// applyMetricFlags copies changed flag values onto m, returning how many
// flags were given.
func applyMetricFlags(cmd *cobra.Command, m *models.Metric) int {
	set := 0
	apply := func(name string, dst **int, v int) {
		if cmd.Flags().Changed(name) {
			val := v
			*dst = &val
			set++
		}
	}
	apply("sleep-score", &m.SleepScore, addSleepScore)
	apply("sleep-duration", &m.SleepDurationSeconds, addSleepDuration)
	apply("deep-sleep", &m.DeepSleepSeconds, addDeepSleep)
	apply("rem-sleep", &m.RemSleepSeconds, addRemSleep)
	apply("body-battery", &m.BodyBattery, addBodyBattery)
	apply("stress", &m.StressAvg, addStress)
	apply("resting-hr", &m.RestingHR, addRestingHR)
	apply("hrv", &m.HRVAvg, addHRV)
	apply("intensity", &m.IntensityMinutes, addIntensity)
	apply("steps", &m.Steps, addSteps)
	return set
}

func summarizeMetric(m *models.Metric) string {
	var parts []string
	for _, f := range models.AllMetricFields {
		if v := m.FieldValue(f); v != nil {
			parts = append(parts, fmt.Sprintf("%s=%d", f, *v))
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "date to log (YYYY-MM-DD, default today)")
	addCmd.Flags().BoolVar(&addUpdate, "update", false, "merge values into an already-logged day")
	addCmd.Flags().IntVar(&addSleepScore, "sleep-score", 0, "sleep score (pts)")
	addCmd.Flags().IntVar(&addSleepDuration, "sleep-duration", 0, "total sleep duration (seconds)")
	addCmd.Flags().IntVar(&addDeepSleep, "deep-sleep", 0, "deep sleep (seconds)")
	addCmd.Flags().IntVar(&addRemSleep, "rem-sleep", 0, "REM sleep (seconds)")
	addCmd.Flags().IntVar(&addBodyBattery, "body-battery", 0, "body battery level (pts)")
	addCmd.Flags().IntVar(&addStress, "stress", 0, "average stress level (pts)")
	addCmd.Flags().IntVar(&addRestingHR, "resting-hr", 0, "resting heart rate (bpm)")
	addCmd.Flags().IntVar(&addHRV, "hrv", 0, "average heart-rate variability (ms)")
	addCmd.Flags().IntVar(&addIntensity, "intensity", 0, "intensity minutes")
	addCmd.Flags().IntVar(&addSteps, "steps", 0, "step count")
	rootCmd.AddCommand(addCmd)
}
