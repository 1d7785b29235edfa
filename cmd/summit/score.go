// ABOUTME: CLI commands for managing daily vital scores.
// ABOUTME: Supports set, show, list, and delete subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/summit/internal/models"
	"github.com/harperreed/summit/internal/storage"
	"github.com/spf13/cobra"
)

var (
	scoreValue    int
	scoreSleep    int
	scoreRecovery int
	scoreStrain   int
	scoreNote     string
	scoreLimit    int
)

var scoreCmd = &cobra.Command{
	Use:     "score",
	Aliases: []string{"s"},
	Short:   "Manage daily vital scores",
	Long: `Track one derived vital score per day.

A vital score is a 0-100 wellness number computed outside summit (by you,
a script, or an AI assistant) from the day's metrics. Optional sleep,
recovery, and strain components record how the score breaks down.

Scores are immutable once logged: to change one, delete it and set it
again.

COMMANDS:

  set      Log the vital score for a date
  show     Show the score for a date (default: latest)
  list     List recent scores
  delete   Delete the score for a date`,
}

var scoreSetCmd = &cobra.Command{
	Use:   "set <date>",
	Short: "Log the vital score for a date",
	Long: `Log the vital score for a date. The overall --score is required;
components and the recommendation are optional.

Examples:
  summit score set 2025-01-15 --score 78
  summit score set 2025-01-15 --score 78 --sleep 82 --recovery 75 --strain 70
  summit score set 2025-01-15 --score 42 --note "Ease off today"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]

		v := models.NewVitalScore(date, scoreValue)
		if cmd.Flags().Changed("sleep") {
			v.WithSleepComponent(scoreSleep)
		}
		if cmd.Flags().Changed("recovery") {
			v.WithRecoveryComponent(scoreRecovery)
		}
		if cmd.Flags().Changed("strain") {
			v.WithStrainComponent(scoreStrain)
		}
		if scoreNote != "" {
			v.WithRecommendation(scoreNote)
		}

		if err := db.SetVitalScore(v); err != nil {
			if storage.IsConstraintViolation(err) {
				return fmt.Errorf("a vital score for %s already exists (delete it with 'summit score delete %s' first)", date, date)
			}
			return fmt.Errorf("failed to log vital score: %w", err)
		}

		color.Green("✓ Logged vital score %d for %s", scoreValue, date)
		return nil
	},
}

var scoreShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the vital score for a date (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var score *models.VitalScore
		var err error
		if len(args) == 1 {
			score, err = db.GetVitalScore(args[0])
		} else {
			score, err = db.LatestVitalScore()
		}
		if err != nil {
			if storage.IsNotFound(err) {
				fmt.Println("No vital score found.")
				return nil
			}
			return fmt.Errorf("failed to get vital score: %w", err)
		}

		printScore(score)
		return nil
	},
}

var scoreListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent vital scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := db.ListVitalScores(scoreLimit)
		if err != nil {
			return fmt.Errorf("failed to list vital scores: %w", err)
		}

		if len(scores) == 0 {
			fmt.Println("No vital scores found.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Println(faint.Sprintf("%-10s  %s  %s  %s  %s",
			"DATE",
			padLeft("SCORE", 5), padLeft("SLEEP", 5),
			padLeft("RECOV", 5), padLeft("STRAIN", 6)))
		for _, v := range scores {
			fmt.Printf("%-10s  %s  %s  %s  %s\n",
				v.Date,
				padLeft(fmt.Sprintf("%d", v.Score), 5),
				cell(v.SleepComponent, 5),
				cell(v.RecoveryComponent, 5),
				cell(v.StrainComponent, 6))
		}

		return nil
	},
}

var scoreDeleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete the vital score for a date",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]

		if err := db.DeleteVitalScore(date); err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("no vital score logged for %s", date)
			}
			return fmt.Errorf("failed to delete vital score: %w", err)
		}

		color.Yellow("✗ Deleted vital score for %s", date)
		return nil
	},
}

func printScore(v *models.VitalScore) {
	color.New(color.Bold).Printf("%s  %d/100\n", v.Date, v.Score)
	if v.SleepComponent != nil {
		fmt.Printf("  %s %d\n", padRight("sleep", 10), *v.SleepComponent)
	}
	if v.RecoveryComponent != nil {
		fmt.Printf("  %s %d\n", padRight("recovery", 10), *v.RecoveryComponent)
	}
	if v.StrainComponent != nil {
		fmt.Printf("  %s %d\n", padRight("strain", 10), *v.StrainComponent)
	}
	if v.Recommendation != nil && *v.Recommendation != "" {
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(*v.Recommendation))
	}
}

func init() {
	scoreSetCmd.Flags().IntVar(&scoreValue, "score", 0, "overall vital score (0-100)")
	scoreSetCmd.Flags().IntVar(&scoreSleep, "sleep", 0, "sleep component (0-100)")
	scoreSetCmd.Flags().IntVar(&scoreRecovery, "recovery", 0, "recovery component (0-100)")
	scoreSetCmd.Flags().IntVar(&scoreStrain, "strain", 0, "strain component (0-100)")
	scoreSetCmd.Flags().StringVar(&scoreNote, "note", "", "recommendation text")
	_ = scoreSetCmd.MarkFlagRequired("score")

	scoreListCmd.Flags().IntVarP(&scoreLimit, "limit", "n", 20, "max number of scores")

	scoreCmd.AddCommand(scoreSetCmd)
	scoreCmd.AddCommand(scoreShowCmd)
	scoreCmd.AddCommand(scoreListCmd)
	scoreCmd.AddCommand(scoreDeleteCmd)
	rootCmd.AddCommand(scoreCmd)
}
