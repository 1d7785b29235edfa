// ABOUTME: CLI command for deleting a logged day.
// ABOUTME: Confirms before deleting unless --force is given.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/summit/internal/storage"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete the metrics logged for a date",
	Long: `Delete the daily metric record for a date.

The day's vital score and any trends are not touched; use 'summit score
delete' and 'summit trend delete' for those.

CAUTION:

  This permanently deletes the day's metrics. There is no undo.

EXAMPLES:

  summit delete 2025-01-15          # Asks for confirmation
  summit delete 2025-01-15 --force  # No confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]

		m, err := db.GetMetric(date)
		if err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("no metrics logged for %s", date)
			}
			return fmt.Errorf("failed to get metrics: %w", err)
		}

		if !deleteForce {
			fmt.Printf("Delete metrics for %s? [y/N]: ", date)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := db.DeleteMetric(date); err != nil {
			return fmt.Errorf("failed to delete metrics: %w", err)
		}

		color.Yellow("✗ Deleted metrics for %s", date)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(summarizeMetric(m)))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
