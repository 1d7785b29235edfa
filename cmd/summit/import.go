// ABOUTME: CLI command for importing store data from a JSON export.
// ABOUTME: Colliding rows are skipped and counted, never overwritten.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import store data from JSON",
	Long: `Import metrics, vital scores, and trends from a JSON export file.

Rows that collide with data already in the store (same date, or same
metric and timeframe) are skipped and counted, not overwritten.

EXAMPLES:

  summit import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		summary, err := db.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		fmt.Printf("  %d metrics, %d scores, %d trends", summary.Metrics, summary.Scores, summary.Trends)
		if summary.Skipped > 0 {
			fmt.Printf(" (%d already present, skipped)", summary.Skipped)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
