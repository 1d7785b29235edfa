// ABOUTME: Export and import functionality for the local health store.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/summit/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for the store. ExportID
// identifies one export run so backups can be told apart.
type ExportData struct {
	Version    string               `json:"version" yaml:"version"`
	ExportID   string               `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool       string               `json:"tool" yaml:"tool"`
	Metrics    []*models.Metric     `json:"metrics" yaml:"metrics"`
	Scores     []*models.VitalScore `json:"scores" yaml:"scores"`
	Trends     []*models.Trend      `json:"trends" yaml:"trends"`
}

// ImportSummary holds counts of imported and skipped rows.
type ImportSummary struct {
	Metrics int
	Scores  int
	Trends  int
	Skipped int
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	metrics, err := d.ListMetrics(0)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}

	scores, err := d.ListVitalScores(0)
	if err != nil {
		return nil, fmt.Errorf("list vital scores: %w", err)
	}

	trends, err := d.ListTrends()
	if err != nil {
		return nil, fmt.Errorf("list trends: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now(),
		Tool:       "summit",
		Metrics:    metrics,
		Scores:     scores,
		Trends:     trends,
	}, nil
}

// ImportData imports rows from an export file. Rows that collide with
// existing data (same date, or same metric and timeframe) are skipped
// and counted rather than treated as failures.
func (d *DB) ImportData(data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}

	for _, m := range data.Metrics {
		err := d.CreateMetric(m)
		if IsConstraintViolation(err) {
			summary.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("import metric %s: %w", m.Date, err)
		}
		summary.Metrics++
	}

	for _, s := range data.Scores {
		err := d.SetVitalScore(s)
		if IsConstraintViolation(err) {
			summary.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("import vital score %s: %w", s.Date, err)
		}
		summary.Scores++
	}

	for _, tr := range data.Trends {
		err := d.CreateTrend(tr)
		if IsConstraintViolation(err) {
			summary.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("import trend %s/%s: %w", tr.Metric, tr.Timeframe, err)
		}
		summary.Trends++
	}

	return summary, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string      `yaml:"version"`
		ExportedAt string      `yaml:"exported_at"`
		Tool       string      `yaml:"tool"`
		Days       []yamlDay   `yaml:"days"`
		Scores     []yamlScore `yaml:"scores"`
		Trends     []yamlTrend `yaml:"trends"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Days:       make([]yamlDay, 0, len(data.Metrics)),
		Scores:     make([]yamlScore, 0, len(data.Scores)),
		Trends:     make([]yamlTrend, 0, len(data.Trends)),
	}

	for _, m := range data.Metrics {
		yamlData.Days = append(yamlData.Days, yamlDay{
			Date:             m.Date,
			SleepScore:       m.SleepScore,
			SleepDuration:    m.SleepDurationSeconds,
			DeepSleep:        m.DeepSleepSeconds,
			RemSleep:         m.RemSleepSeconds,
			BodyBattery:      m.BodyBattery,
			StressAvg:        m.StressAvg,
			RestingHR:        m.RestingHR,
			HRVAvg:           m.HRVAvg,
			IntensityMinutes: m.IntensityMinutes,
			Steps:            m.Steps,
		})
	}

	for _, s := range data.Scores {
		ys := yamlScore{
			Date:     s.Date,
			Score:    s.Score,
			Sleep:    s.SleepComponent,
			Recovery: s.RecoveryComponent,
			Strain:   s.StrainComponent,
		}
		if s.Recommendation != nil {
			ys.Recommendation = *s.Recommendation
		}
		yamlData.Scores = append(yamlData.Scores, ys)
	}

	for _, tr := range data.Trends {
		yamlData.Trends = append(yamlData.Trends, yamlTrend{
			Metric:        tr.Metric,
			Timeframe:     tr.Timeframe,
			Baseline:      tr.Baseline,
			CurrentAvg:    tr.CurrentAvg,
			PercentChange: tr.PercentChange,
			Direction:     tr.Direction,
			DetectedAt:    tr.DetectedAt.Format(time.RFC3339),
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlDay struct {
	Date             string `yaml:"date"`
	SleepScore       *int   `yaml:"sleep_score,omitempty"`
	SleepDuration    *int   `yaml:"sleep_duration_seconds,omitempty"`
	DeepSleep        *int   `yaml:"deep_sleep_seconds,omitempty"`
	RemSleep         *int   `yaml:"rem_sleep_seconds,omitempty"`
	BodyBattery      *int   `yaml:"body_battery,omitempty"`
	StressAvg        *int   `yaml:"stress_avg,omitempty"`
	RestingHR        *int   `yaml:"resting_hr,omitempty"`
	HRVAvg           *int   `yaml:"hrv_avg,omitempty"`
	IntensityMinutes *int   `yaml:"intensity_minutes,omitempty"`
	Steps            *int   `yaml:"steps,omitempty"`
}

type yamlScore struct {
	Date           string `yaml:"date"`
	Score          int    `yaml:"score"`
	Sleep          *int   `yaml:"sleep_component,omitempty"`
	Recovery       *int   `yaml:"recovery_component,omitempty"`
	Strain         *int   `yaml:"strain_component,omitempty"`
	Recommendation string `yaml:"recommendation,omitempty"`
}

type yamlTrend struct {
	Metric        string  `yaml:"metric"`
	Timeframe     string  `yaml:"timeframe"`
	Baseline      float64 `yaml:"baseline"`
	CurrentAvg    float64 `yaml:"current_avg"`
	PercentChange float64 `yaml:"percent_change"`
	Direction     string  `yaml:"direction"`
	DetectedAt    string  `yaml:"detected_at"`
}

// ExportMarkdown exports data as Markdown tables. An empty since
// exports everything; otherwise only rows dated since or later.
func (d *DB) ExportMarkdown(since string) (string, error) {
	data, err := d.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Summit Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	var metrics []*models.Metric
	for _, m := range data.Metrics {
		if since == "" || m.Date >= since {
			metrics = append(metrics, m)
		}
	}

	if len(metrics) > 0 {
		sb.WriteString("## Daily Metrics\n\n")
		sb.WriteString("| Date | Sleep | Sleep (h) | Deep (h) | REM (h) | Battery | Stress | RHR | HRV | Intensity | Steps |\n")
		sb.WriteString("|------|-------|-----------|----------|---------|---------|--------|-----|-----|-----------|-------|\n")
		for _, m := range metrics {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				m.Date,
				mdInt(m.SleepScore),
				mdHours(m.SleepDurationSeconds),
				mdHours(m.DeepSleepSeconds),
				mdHours(m.RemSleepSeconds),
				mdInt(m.BodyBattery),
				mdInt(m.StressAvg),
				mdInt(m.RestingHR),
				mdInt(m.HRVAvg),
				mdInt(m.IntensityMinutes),
				mdInt(m.Steps)))
		}
		sb.WriteString("\n")
	}

	var scores []*models.VitalScore
	for _, s := range data.Scores {
		if since == "" || s.Date >= since {
			scores = append(scores, s)
		}
	}

	if len(scores) > 0 {
		sb.WriteString("## Vital Scores\n\n")
		sb.WriteString("| Date | Score | Sleep | Recovery | Strain | Recommendation |\n")
		sb.WriteString("|------|-------|-------|----------|--------|----------------|\n")
		for _, s := range scores {
			rec := ""
			if s.Recommendation != nil {
				rec = *s.Recommendation
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %s |\n",
				s.Date, s.Score,
				mdInt(s.SleepComponent),
				mdInt(s.RecoveryComponent),
				mdInt(s.StrainComponent),
				rec))
		}
		sb.WriteString("\n")
	}

	if len(data.Trends) > 0 {
		sb.WriteString("## Trends\n\n")
		sb.WriteString("| Metric | Timeframe | Baseline | Current | Change | Direction |\n")
		sb.WriteString("|--------|-----------|----------|---------|--------|----------|\n")
		for _, tr := range data.Trends {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.1f | %.1f | %+.1f%% | %s |\n",
				tr.Metric, tr.Timeframe, tr.Baseline, tr.CurrentAvg, tr.PercentChange, tr.Direction))
		}
	}

	return sb.String(), nil
}

func mdInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func mdHours(seconds *int) string {
	if seconds == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", float64(*seconds)/3600)
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) (*ImportSummary, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}
