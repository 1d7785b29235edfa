// ABOUTME: Repository interface for the health store.
// ABOUTME: Defines the contract for metrics, scores, and trends operations.
package storage

import (
	"github.com/harperreed/summit/internal/models"
)

// Repository defines the storage interface for health data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Daily metric operations
	CreateMetric(m *models.Metric) error
	GetMetric(date string) (*models.Metric, error)
	UpdateMetric(m *models.Metric) error
	ListMetrics(limit int) ([]*models.Metric, error)
	ListMetricsRange(from, to string) ([]*models.Metric, error)
	DeleteMetric(date string) error

	// Vital score operations
	SetVitalScore(v *models.VitalScore) error
	GetVitalScore(date string) (*models.VitalScore, error)
	LatestVitalScore() (*models.VitalScore, error)
	ListVitalScores(limit int) ([]*models.VitalScore, error)
	DeleteVitalScore(date string) error

	// Trend operations
	CreateTrend(t *models.Trend) error
	UpsertTrend(t *models.Trend) error
	GetTrend(metric, timeframe string) (*models.Trend, error)
	ListTrends() ([]*models.Trend, error)
	DeleteTrend(metric, timeframe string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) (*ImportSummary, error)

	// Lifecycle
	Close() error
}
