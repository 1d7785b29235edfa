// ABOUTME: Vital score operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for vital_scores rows.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/summit/internal/models"
)

const scoreColumns = `id, date, score, sleep_component, recovery_component,
	strain_component, recommendation, created_at`

// SetVitalScore stores the score row for a date. Each date holds exactly one
// score; a second insert for the same date surfaces as a ConstraintViolation
// (delete the old row to re-score a day).
func (d *DB) SetVitalScore(v *models.VitalScore) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("set vital score: %w", err)
	}

	query := `
		INSERT INTO vital_scores (date, score, sleep_component, recovery_component,
			strain_component, recommendation)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := d.db.Exec(query,
		v.Date,
		v.Score,
		v.SleepComponent,
		v.RecoveryComponent,
		v.StrainComponent,
		v.Recommendation,
	)
	if err != nil {
		return fmt.Errorf("set vital score: %w", constraintError(err))
	}

	if id, err := result.LastInsertId(); err == nil {
		v.ID = id
	}
	return nil
}

// GetVitalScore retrieves the score row for a date.
func (d *DB) GetVitalScore(date string) (*models.VitalScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM vital_scores WHERE date = ?`
	v, err := scanVitalScore(d.db.QueryRow(query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vital score %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("get vital score: %w", err)
	}
	return v, nil
}

// LatestVitalScore returns the score row with the most recent date.
func (d *DB) LatestVitalScore() (*models.VitalScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM vital_scores ORDER BY date DESC LIMIT 1`
	v, err := scanVitalScore(d.db.QueryRow(query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vital scores: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("latest vital score: %w", err)
	}
	return v, nil
}

// ListVitalScores retrieves score rows sorted by date descending. A limit of
// 0 returns all rows.
func (d *DB) ListVitalScores(limit int) ([]*models.VitalScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM vital_scores ORDER BY date DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vital scores: %w", err)
	}
	defer rows.Close()

	var scores []*models.VitalScore
	for rows.Next() {
		v, err := scanVitalScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vital score: %w", err)
		}
		scores = append(scores, v)
	}
	return scores, rows.Err()
}

// DeleteVitalScore removes the score row for a date.
func (d *DB) DeleteVitalScore(date string) error {
	result, err := d.db.Exec("DELETE FROM vital_scores WHERE date = ?", date)
	if err != nil {
		return fmt.Errorf("delete vital score: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vital score: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("vital score %s: %w", date, ErrNotFound)
	}
	return nil
}

// scanVitalScore scans a single row into a VitalScore struct.
func scanVitalScore(row interface{ Scan(dest ...any) error }) (*models.VitalScore, error) {
	var v models.VitalScore
	var createdAt sql.NullString

	err := row.Scan(
		&v.ID,
		&v.Date,
		&v.Score,
		&v.SleepComponent,
		&v.RecoveryComponent,
		&v.StrainComponent,
		&v.Recommendation,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = parseTimestamp(createdAt.String)
	return &v, nil
}
