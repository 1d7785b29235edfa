// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/summit/internal/models"
)

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.CreateMetric(models.NewMetric("2025-06-01").WithSleepScore(82).WithSteps(11243)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}
	if err := db.SetVitalScore(models.NewVitalScore("2025-06-01", 78)); err != nil {
		t.Fatalf("SetVitalScore failed: %v", err)
	}
	if err := db.CreateTrend(models.NewTrend("steps", models.TimeframeWeek, 9000, 10000)); err != nil {
		t.Fatalf("CreateTrend failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if export.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", export.Version)
	}
	if export.Tool != "summit" {
		t.Errorf("Expected tool summit, got %s", export.Tool)
	}
	if len(export.Metrics) != 1 {
		t.Fatalf("Expected 1 metric, got %d", len(export.Metrics))
	}
	if len(export.Scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(export.Scores))
	}
	if len(export.Trends) != 1 {
		t.Fatalf("Expected 1 trend, got %d", len(export.Trends))
	}

	m := export.Metrics[0]
	if m.Date != "2025-06-01" {
		t.Errorf("Metric date mismatch: got %s", m.Date)
	}
	if m.SleepScore == nil || *m.SleepScore != 82 {
		t.Errorf("SleepScore mismatch: got %v", m.SleepScore)
	}
	if m.RestingHR != nil {
		t.Error("Expected unset RestingHR to stay nil through export")
	}
}

func TestExportJSONEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if len(export.Metrics) != 0 || len(export.Scores) != 0 || len(export.Trends) != 0 {
		t.Error("Expected empty export")
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.CreateMetric(models.NewMetric("2025-06-01").WithSleepScore(82)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}
	score := models.NewVitalScore("2025-06-01", 78).WithRecommendation("Take it easy today")
	if err := db.SetVitalScore(score); err != nil {
		t.Fatalf("SetVitalScore failed: %v", err)
	}
	if err := db.CreateTrend(models.NewTrend("resting_hr", models.TimeframeWeek, 48, 44)); err != nil {
		t.Fatalf("CreateTrend failed: %v", err)
	}

	data, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"version:", "tool: summit", "days:",
		"2025-06-01", "sleep_score: 82",
		"score: 78", "recommendation: Take it easy today",
		"metric: resting_hr", "timeframe: 7d", "direction: down",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected YAML to contain %q, got:\n%s", want, out)
		}
	}

	// Unset measurement fields are omitted entirely
	if strings.Contains(out, "body_battery") {
		t.Error("Expected unset fields to be omitted from YAML")
	}
}

func TestExportYAMLEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	data, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if !strings.Contains(string(data), "tool: summit") {
		t.Errorf("Expected YAML header in empty export, got:\n%s", data)
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m := models.NewMetric("2025-06-01").
		WithSleepScore(82).
		WithSleepDuration(27360).
		WithSteps(11243)
	if err := db.CreateMetric(m); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}
	if err := db.SetVitalScore(models.NewVitalScore("2025-06-01", 78)); err != nil {
		t.Fatalf("SetVitalScore failed: %v", err)
	}
	if err := db.CreateTrend(models.NewTrend("steps", models.TimeframeWeek, 9000, 10000)); err != nil {
		t.Fatalf("CreateTrend failed: %v", err)
	}

	out, err := db.ExportMarkdown("")
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	for _, want := range []string{
		"# Summit Export", "## Daily Metrics", "## Vital Scores", "## Trends",
		"2025-06-01", "11243", "7.6", "| steps | 7d |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected markdown to contain %q, got:\n%s", want, out)
		}
	}
}

func TestExportMarkdownWithSince(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.CreateMetric(models.NewMetric("2025-05-01").WithSteps(8000)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}
	if err := db.CreateMetric(models.NewMetric("2025-06-01").WithSteps(9000)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}

	out, err := db.ExportMarkdown("2025-06-01")
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	if strings.Contains(out, "2025-05-01") {
		t.Error("Expected rows before the since date to be filtered out")
	}
	if !strings.Contains(out, "2025-06-01") {
		t.Error("Expected rows at the since date to be included")
	}
}

func TestExportMarkdownEmptyDB(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	out, err := db.ExportMarkdown("")
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "# Summit Export") {
		t.Error("Expected markdown header")
	}
	if strings.Contains(out, "## Daily Metrics") {
		t.Error("Expected no metrics section for empty store")
	}
}

func TestImportJSON(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "summit",
		Metrics: []*models.Metric{
			models.NewMetric("2025-06-01").WithSleepScore(82),
			models.NewMetric("2025-06-02").WithSleepScore(75),
		},
		Scores: []*models.VitalScore{
			models.NewVitalScore("2025-06-01", 78),
		},
		Trends: []*models.Trend{
			models.NewTrend("sleep_score", models.TimeframeWeek, 74, 78),
		},
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	summary, err := db.ImportJSON(raw)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if summary.Metrics != 2 || summary.Scores != 1 || summary.Trends != 1 {
		t.Errorf("Summary mismatch: %+v", summary)
	}
	if summary.Skipped != 0 {
		t.Errorf("Expected no skipped rows, got %d", summary.Skipped)
	}

	got, err := db.GetMetric("2025-06-02")
	if err != nil {
		t.Fatalf("GetMetric after import failed: %v", err)
	}
	if got.SleepScore == nil || *got.SleepScore != 75 {
		t.Errorf("SleepScore mismatch after import: got %v", got.SleepScore)
	}
}

func TestImportJSONInvalid(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.ImportJSON([]byte("not json")); err == nil {
		t.Error("Expected error importing invalid JSON")
	}
}

func TestImportDataSkipsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.CreateMetric(models.NewMetric("2025-06-01").WithSteps(5000)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}
	if err := db.CreateTrend(models.NewTrend("steps", models.TimeframeWeek, 9000, 10000)); err != nil {
		t.Fatalf("CreateTrend failed: %v", err)
	}

	data := &ExportData{
		Version: "1.0",
		Tool:    "summit",
		Metrics: []*models.Metric{
			models.NewMetric("2025-06-01").WithSteps(9999), // collides
			models.NewMetric("2025-06-02").WithSteps(7000),
		},
		Trends: []*models.Trend{
			models.NewTrend("steps", models.TimeframeWeek, 9100, 10100), // collides
		},
	}

	summary, err := db.ImportData(data)
	if err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}
	if summary.Metrics != 1 {
		t.Errorf("Expected 1 imported metric, got %d", summary.Metrics)
	}
	if summary.Skipped != 2 {
		t.Errorf("Expected 2 skipped rows, got %d", summary.Skipped)
	}

	// Colliding rows left the existing data in place
	got, err := db.GetMetric("2025-06-01")
	if err != nil {
		t.Fatalf("GetMetric failed: %v", err)
	}
	if got.Steps == nil || *got.Steps != 5000 {
		t.Errorf("Expected original steps 5000, got %v", got.Steps)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	defer src.Close()

	m := models.NewMetric("2025-06-01").
		WithBodyBattery(85).
		WithSleepScore(82).
		WithSleepDuration(27360).
		WithRestingHR(47)
	if err := src.CreateMetric(m); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}
	score := models.NewVitalScore("2025-06-01", 78).WithSleepComponent(82)
	if err := src.SetVitalScore(score); err != nil {
		t.Fatalf("SetVitalScore failed: %v", err)
	}
	if err := src.CreateTrend(models.NewTrend("resting_hr", models.TimeframeMonth, 49, 47)); err != nil {
		t.Fatalf("CreateTrend failed: %v", err)
	}

	raw, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestDB(t)
	defer dst.Close()

	summary, err := dst.ImportJSON(raw)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if summary.Metrics != 1 || summary.Scores != 1 || summary.Trends != 1 {
		t.Errorf("Summary mismatch: %+v", summary)
	}

	got, err := dst.GetMetric("2025-06-01")
	if err != nil {
		t.Fatalf("GetMetric failed: %v", err)
	}
	if got.BodyBattery == nil || *got.BodyBattery != 85 {
		t.Errorf("BodyBattery mismatch: got %v", got.BodyBattery)
	}
	if got.RestingHR == nil || *got.RestingHR != 47 {
		t.Errorf("RestingHR mismatch: got %v", got.RestingHR)
	}

	gotScore, err := dst.GetVitalScore("2025-06-01")
	if err != nil {
		t.Fatalf("GetVitalScore failed: %v", err)
	}
	if gotScore.SleepComponent == nil || *gotScore.SleepComponent != 82 {
		t.Errorf("SleepComponent mismatch: got %v", gotScore.SleepComponent)
	}

	gotTrend, err := dst.GetTrend("resting_hr", "30d")
	if err != nil {
		t.Fatalf("GetTrend failed: %v", err)
	}
	if gotTrend.Baseline != 49 {
		t.Errorf("Baseline mismatch: got %.1f", gotTrend.Baseline)
	}
}

func TestGetAllData(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, date := range []string{"2025-06-01", "2025-06-02"} {
		if err := db.CreateMetric(models.NewMetric(date)); err != nil {
			t.Fatalf("CreateMetric failed: %v", err)
		}
	}
	if err := db.SetVitalScore(models.NewVitalScore("2025-06-01", 70)); err != nil {
		t.Fatalf("SetVitalScore failed: %v", err)
	}

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if data.ExportID == "" {
		t.Error("Expected a non-empty export ID")
	}
	if len(data.Metrics) != 2 {
		t.Errorf("Expected 2 metrics, got %d", len(data.Metrics))
	}
	if len(data.Scores) != 1 {
		t.Errorf("Expected 1 score, got %d", len(data.Scores))
	}
	if len(data.Trends) != 0 {
		t.Errorf("Expected 0 trends, got %d", len(data.Trends))
	}
}
