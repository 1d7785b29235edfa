// ABOUTME: CLI commands for inspecting and copying the store database.
// ABOUTME: Supports status (schema version, migrations) and copy subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/summit/internal/storage"
	"github.com/spf13/cobra"
)

var dbCopyTo string

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and copy the store database",
	Long: `Inspect the store's schema state or copy its contents into a fresh
database file.

COMMANDS:

  status   Show store path, schema version, and applied migrations
  copy     Copy all data into a new database file`,
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store path, schema version, and applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := db.SchemaVersion()
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		records, err := db.MigrationStatus()
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}

		fmt.Printf("Store:          %s\n", db.Path())
		fmt.Printf("Schema version: %d\n", version)
		fmt.Println()

		faint := color.New(color.Faint)
		for _, r := range records {
			state := color.YellowString("pending")
			if r.Applied {
				state = faint.Sprint(r.AppliedAt.Format("2006-01-02 15:04"))
			}
			fmt.Printf("  #%d %s %s\n", r.Version, padRight(r.Description, 28), state)
		}

		return nil
	},
}

var dbCopyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the store into a fresh database file",
	Long: `Copy every metric, vital score, and trend into a new database file.

The destination is created (and migrated) if it does not exist. Copying
into a store that already holds conflicting rows fails; pick an empty
destination.

EXAMPLES:

  summit db copy --to /mnt/backup/summit.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dst, err := storage.Open(dbCopyTo)
		if err != nil {
			return fmt.Errorf("failed to open destination store: %w", err)
		}
		defer dst.Close()

		summary, err := storage.CopyData(db, dst)
		if err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}

		color.Green("✓ Copied store to %s", dbCopyTo)
		fmt.Printf("  %d metrics, %d scores, %d trends\n", summary.Metrics, summary.Scores, summary.Trends)
		return nil
	},
}

func init() {
	dbCopyCmd.Flags().StringVar(&dbCopyTo, "to", "", "destination database path")
	_ = dbCopyCmd.MarkFlagRequired("to")

	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbCopyCmd)
	rootCmd.AddCommand(dbCmd)
}
