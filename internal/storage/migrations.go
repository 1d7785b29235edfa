// ABOUTME: Versioned schema migrations applied through goose at open time.
// ABOUTME: Each version runs in its own transaction and is recorded exactly once.
package storage

import (
	"context"
	"embed"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationRecord describes one known migration and its applied state.
type MigrationRecord struct {
	Version     int64
	Description string
	Applied     bool
	AppliedAt   time.Time
}

// migrationProvider builds a goose provider over the embedded migration set.
func (d *DB) migrationProvider() (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, d.db, fsys)
}

// applyMigrations applies every unapplied migration in ascending version
// order. goose records applied versions in goose_db_version and runs each
// step in its own transaction, so a failed statement rolls the step back
// and leaves its version unrecorded.
func (d *DB) applyMigrations() error {
	provider, err := d.migrationProvider()
	if err != nil {
		return &SchemaError{Err: err}
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

// SchemaVersion returns the highest applied migration version, 0 for a store
// with no applied migrations.
func (d *DB) SchemaVersion() (int64, error) {
	provider, err := d.migrationProvider()
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(context.Background())
}

// MigrationStatus lists every known migration with its applied state, in
// ascending version order.
func (d *DB) MigrationStatus() ([]MigrationRecord, error) {
	provider, err := d.migrationProvider()
	if err != nil {
		return nil, err
	}
	statuses, err := provider.Status(context.Background())
	if err != nil {
		return nil, err
	}

	records := make([]MigrationRecord, 0, len(statuses))
	for _, s := range statuses {
		records = append(records, MigrationRecord{
			Version:     s.Source.Version,
			Description: describeMigration(s.Source.Path),
			Applied:     s.State == goose.StateApplied,
			AppliedAt:   s.AppliedAt,
		})
	}
	return records, nil
}

// describeMigration turns "00001_create_initial_tables.sql" into
// "create initial tables".
func describeMigration(sourcePath string) string {
	name := strings.TrimSuffix(path.Base(sourcePath), ".sql")
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "_", " ")
}
