// ABOUTME: Daily metric CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for health_metrics rows.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/summit/internal/models"
)

const metricColumns = `id, date, body_battery, sleep_score, sleep_duration_seconds,
	deep_sleep_seconds, rem_sleep_seconds, stress_avg, resting_hr, hrv_avg,
	intensity_minutes, steps, created_at, updated_at`

// CreateMetric stores a new daily metric row. created_at and updated_at are
// filled by the schema defaults. A duplicate date surfaces as a
// ConstraintViolation.
func (d *DB) CreateMetric(m *models.Metric) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("create metric: %w", err)
	}

	query := `
		INSERT INTO health_metrics (date, body_battery, sleep_score, sleep_duration_seconds,
			deep_sleep_seconds, rem_sleep_seconds, stress_avg, resting_hr, hrv_avg,
			intensity_minutes, steps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := d.db.Exec(query,
		m.Date,
		m.BodyBattery,
		m.SleepScore,
		m.SleepDurationSeconds,
		m.DeepSleepSeconds,
		m.RemSleepSeconds,
		m.StressAvg,
		m.RestingHR,
		m.HRVAvg,
		m.IntensityMinutes,
		m.Steps,
	)
	if err != nil {
		return fmt.Errorf("create metric: %w", constraintError(err))
	}

	if id, err := result.LastInsertId(); err == nil {
		m.ID = id
	}
	return nil
}

// GetMetric retrieves the metric row for a date.
func (d *DB) GetMetric(date string) (*models.Metric, error) {
	query := `SELECT ` + metricColumns + ` FROM health_metrics WHERE date = ?`
	m, err := scanMetric(d.db.QueryRow(query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("metric %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("get metric: %w", err)
	}
	return m, nil
}

// UpdateMetric replaces the measurement columns for an existing date and
// refreshes updated_at.
func (d *DB) UpdateMetric(m *models.Metric) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("update metric: %w", err)
	}

	query := `
		UPDATE health_metrics
		SET body_battery = ?, sleep_score = ?, sleep_duration_seconds = ?,
			deep_sleep_seconds = ?, rem_sleep_seconds = ?, stress_avg = ?,
			resting_hr = ?, hrv_avg = ?, intensity_minutes = ?, steps = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE date = ?
	`
	result, err := d.db.Exec(query,
		m.BodyBattery,
		m.SleepScore,
		m.SleepDurationSeconds,
		m.DeepSleepSeconds,
		m.RemSleepSeconds,
		m.StressAvg,
		m.RestingHR,
		m.HRVAvg,
		m.IntensityMinutes,
		m.Steps,
		m.Date,
	)
	if err != nil {
		return fmt.Errorf("update metric: %w", constraintError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update metric: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("metric %s: %w", m.Date, ErrNotFound)
	}
	return nil
}

// ListMetrics retrieves metric rows sorted by date descending (most recent
// first). A limit of 0 returns all rows.
func (d *DB) ListMetrics(limit int) ([]*models.Metric, error) {
	query := `SELECT ` + metricColumns + ` FROM health_metrics ORDER BY date DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	return scanMetrics(rows)
}

// ListMetricsRange retrieves metric rows with from <= date <= to, sorted by
// date ascending.
func (d *DB) ListMetricsRange(from, to string) ([]*models.Metric, error) {
	query := `SELECT ` + metricColumns + ` FROM health_metrics
		WHERE date >= ? AND date <= ? ORDER BY date ASC`

	rows, err := d.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list metrics range: %w", err)
	}
	defer rows.Close()

	return scanMetrics(rows)
}

// DeleteMetric removes the metric row for a date.
func (d *DB) DeleteMetric(date string) error {
	result, err := d.db.Exec("DELETE FROM health_metrics WHERE date = ?", date)
	if err != nil {
		return fmt.Errorf("delete metric: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete metric: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("metric %s: %w", date, ErrNotFound)
	}
	return nil
}

// scanMetric scans a single row into a Metric struct.
func scanMetric(row interface{ Scan(dest ...any) error }) (*models.Metric, error) {
	var m models.Metric
	var createdAt, updatedAt sql.NullString

	err := row.Scan(
		&m.ID,
		&m.Date,
		&m.BodyBattery,
		&m.SleepScore,
		&m.SleepDurationSeconds,
		&m.DeepSleepSeconds,
		&m.RemSleepSeconds,
		&m.StressAvg,
		&m.RestingHR,
		&m.HRVAvg,
		&m.IntensityMinutes,
		&m.Steps,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.CreatedAt = parseTimestamp(createdAt.String)
	m.UpdatedAt = parseTimestamp(updatedAt.String)
	return &m, nil
}

// scanMetrics scans multiple rows into a slice of Metrics.
func scanMetrics(rows *sql.Rows) ([]*models.Metric, error) {
	var metrics []*models.Metric

	for rows.Next() {
		m, err := scanMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}

// sqliteTimeFormat is what CURRENT_TIMESTAMP produces.
const sqliteTimeFormat = "2006-01-02 15:04:05"

// parseTimestamp reads SQLite's CURRENT_TIMESTAMP format, falling back to
// RFC3339 for rows written by other tools.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(sqliteTimeFormat, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
