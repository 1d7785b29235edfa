// ABOUTME: Trend operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for trends rows.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/summit/internal/models"
)

const trendColumns = `id, metric, timeframe, baseline, current_avg,
	percent_change, direction, detected_at`

// CreateTrend inserts a trend row. A duplicate (metric, timeframe) key
// surfaces as a ConstraintViolation; use UpsertTrend to overwrite.
func (d *DB) CreateTrend(t *models.Trend) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("create trend: %w", err)
	}

	query := `
		INSERT INTO trends (metric, timeframe, baseline, current_avg, percent_change, direction)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := d.db.Exec(query,
		t.Metric,
		t.Timeframe,
		t.Baseline,
		t.CurrentAvg,
		t.PercentChange,
		t.Direction,
	)
	if err != nil {
		return fmt.Errorf("create trend: %w", constraintError(err))
	}

	if id, err := result.LastInsertId(); err == nil {
		t.ID = id
	}
	return nil
}

// UpsertTrend inserts a trend row, replacing any existing detection for the
// same (metric, timeframe) key. detected_at is refreshed on overwrite.
func (d *DB) UpsertTrend(t *models.Trend) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("upsert trend: %w", err)
	}

	query := `
		INSERT INTO trends (metric, timeframe, baseline, current_avg, percent_change, direction)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(metric, timeframe) DO UPDATE SET
			baseline = excluded.baseline,
			current_avg = excluded.current_avg,
			percent_change = excluded.percent_change,
			direction = excluded.direction,
			detected_at = CURRENT_TIMESTAMP
	`
	_, err := d.db.Exec(query,
		t.Metric,
		t.Timeframe,
		t.Baseline,
		t.CurrentAvg,
		t.PercentChange,
		t.Direction,
	)
	if err != nil {
		return fmt.Errorf("upsert trend: %w", err)
	}
	return nil
}

// GetTrend retrieves the trend row for a (metric, timeframe) key.
func (d *DB) GetTrend(metric, timeframe string) (*models.Trend, error) {
	query := `SELECT ` + trendColumns + ` FROM trends WHERE metric = ? AND timeframe = ?`
	t, err := scanTrend(d.db.QueryRow(query, metric, timeframe))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trend %s/%s: %w", metric, timeframe, ErrNotFound)
		}
		return nil, fmt.Errorf("get trend: %w", err)
	}
	return t, nil
}

// ListTrends retrieves all trend rows sorted by metric then timeframe.
func (d *DB) ListTrends() ([]*models.Trend, error) {
	query := `SELECT ` + trendColumns + ` FROM trends ORDER BY metric ASC, timeframe ASC`

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list trends: %w", err)
	}
	defer rows.Close()

	var trends []*models.Trend
	for rows.Next() {
		t, err := scanTrend(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trend: %w", err)
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

// DeleteTrend removes the trend row for a (metric, timeframe) key.
func (d *DB) DeleteTrend(metric, timeframe string) error {
	result, err := d.db.Exec("DELETE FROM trends WHERE metric = ? AND timeframe = ?", metric, timeframe)
	if err != nil {
		return fmt.Errorf("delete trend: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trend: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("trend %s/%s: %w", metric, timeframe, ErrNotFound)
	}
	return nil
}

// scanTrend scans a single row into a Trend struct.
func scanTrend(row interface{ Scan(dest ...any) error }) (*models.Trend, error) {
	var t models.Trend
	var baseline, currentAvg, percentChange sql.NullFloat64
	var direction, detectedAt sql.NullString

	err := row.Scan(
		&t.ID,
		&t.Metric,
		&t.Timeframe,
		&baseline,
		&currentAvg,
		&percentChange,
		&direction,
		&detectedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Baseline = baseline.Float64
	t.CurrentAvg = currentAvg.Float64
	t.PercentChange = percentChange.Float64
	t.Direction = direction.String
	t.DetectedAt = parseTimestamp(detectedAt.String)
	return &t, nil
}
