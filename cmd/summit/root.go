// ABOUTME: Root Cobra command for summit CLI.
// ABOUTME: Opens and closes the store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/summit/internal/config"
	"github.com/harperreed/summit/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	db     *storage.DB
)

var rootCmd = &cobra.Command{
	Use:     "summit",
	Short:   "Local store for daily health metrics, vital scores, and trends",
	Version: "1.0.0",
	Long: `Summit is a local store for daily health metrics, derived vital scores,
and detected trends. Everything lives in a single SQLite file.

WHAT IT STORES:

  Daily metrics   sleep score/duration, deep & REM sleep, body battery,
                  stress, resting HR, HRV, intensity minutes, steps
  Vital scores    one derived 0-100 wellness score per day, with optional
                  sleep/recovery/strain components
  Trends          directional changes per metric over 7d/30d/90d windows

QUICK START:

  $ summit add --steps 12000 --resting-hr 48       # Log today's numbers
  $ summit add --date 2025-01-15 --sleep-score 82  # Log a past day
  $ summit list                                    # Recent days
  $ summit show 2025-01-15                         # One day in detail
  $ summit score set 2025-01-15 --score 78         # Log the day's vital score
  $ summit trend set resting_hr 7d --baseline 52 --current 48.5

EXPORT / BACKUP:

  $ summit export --format json -o backup.json
  $ summit import backup.json
  $ summit db copy --to /mnt/backup/summit.db

MCP INTEGRATION:

  Run 'summit mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "summit": { "command": "summit", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  The store is a single SQLite database at ~/.local/share/summit/summit.db.
  Override the location with --db or a config file at
  ~/.config/summit/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip opening the store for commands that don't touch it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		path := dbPath
		if path == "" {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path = cfg.DBPath()
		}

		var err error
		db, err = storage.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			err := db.Close()
			db = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the summit database (default: XDG data dir)")
}
