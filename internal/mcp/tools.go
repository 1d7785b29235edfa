// ABOUTME: MCP tool implementations for the summit health store.
// ABOUTME: Provides CRUD operations for daily metrics, vital scores, and trends.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/summit/internal/models"
	"github.com/harperreed/summit/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_metric",
		Description: "Record daily health metrics for a date; merges into the existing row when the date is already logged",
	}, s.handleAddMetric)

	// get_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_metrics",
		Description: "Get daily metrics for a date, a date range, or the most recent days",
	}, s.handleGetMetrics)

	// delete_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_metric",
		Description: "Delete the daily metric row for a date",
	}, s.handleDeleteMetric)

	// log_vital_score
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_vital_score",
		Description: "Record the derived vital score for a date (one score per date)",
	}, s.handleLogVitalScore)

	// get_vital_scores
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_vital_scores",
		Description: "Get the vital score for a date, or recent scores",
	}, s.handleGetVitalScores)

	// record_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_trend",
		Description: "Record a detected trend for a metric and timeframe; newer detections overwrite",
	}, s.handleRecordTrend)

	// get_trends
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trends",
		Description: "Get detected trends, optionally filtered by metric",
	}, s.handleGetTrends)
}

// Tool input/output types

type addMetricInput struct {
	Date             string `json:"date" jsonschema:"Date (YYYY-MM-DD)"`
	SleepScore       *int   `json:"sleep_score,omitempty" jsonschema:"Sleep score (points)"`
	SleepDuration    *int   `json:"sleep_duration_seconds,omitempty" jsonschema:"Total sleep duration in seconds"`
	DeepSleep        *int   `json:"deep_sleep_seconds,omitempty" jsonschema:"Deep sleep in seconds"`
	RemSleep         *int   `json:"rem_sleep_seconds,omitempty" jsonschema:"REM sleep in seconds"`
	BodyBattery      *int   `json:"body_battery,omitempty" jsonschema:"Body battery level"`
	StressAvg        *int   `json:"stress_avg,omitempty" jsonschema:"Average stress level"`
	RestingHR        *int   `json:"resting_hr,omitempty" jsonschema:"Resting heart rate (bpm)"`
	HRVAvg           *int   `json:"hrv_avg,omitempty" jsonschema:"Average heart-rate variability (ms)"`
	IntensityMinutes *int   `json:"intensity_minutes,omitempty" jsonschema:"Intensity minutes"`
	Steps            *int   `json:"steps,omitempty" jsonschema:"Step count"`
}

type metricOutput struct {
	Date    string `json:"date"`
	Updated bool   `json:"updated"`
	Message string `json:"message"`
}

type getMetricsInput struct {
	Date  string `json:"date,omitempty" jsonschema:"Exact date (YYYY-MM-DD)"`
	From  string `json:"from,omitempty" jsonschema:"Range start date (YYYY-MM-DD)"`
	To    string `json:"to,omitempty" jsonschema:"Range end date (YYYY-MM-DD)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max recent days (default 14)"`
}

type deleteMetricInput struct {
	Date string `json:"date" jsonschema:"Date (YYYY-MM-DD)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logVitalScoreInput struct {
	Date           string `json:"date" jsonschema:"Date (YYYY-MM-DD)"`
	Score          int    `json:"score" jsonschema:"Overall vital score (0-100)"`
	Sleep          *int   `json:"sleep_component,omitempty" jsonschema:"Sleep component (0-100)"`
	Recovery       *int   `json:"recovery_component,omitempty" jsonschema:"Recovery component (0-100)"`
	Strain         *int   `json:"strain_component,omitempty" jsonschema:"Strain component (0-100)"`
	Recommendation string `json:"recommendation,omitempty" jsonschema:"Optional recommendation text"`
}

type scoreOutput struct {
	Date    string `json:"date"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

type getVitalScoresInput struct {
	Date  string `json:"date,omitempty" jsonschema:"Exact date (YYYY-MM-DD)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max recent scores (default 14)"`
}

type recordTrendInput struct {
	Metric     string  `json:"metric" jsonschema:"Metric name (sleep_score, resting_hr, hrv_avg, steps, ...)"`
	Timeframe  string  `json:"timeframe" jsonschema:"Window: 7d, 30d, or 90d"`
	Baseline   float64 `json:"baseline" jsonschema:"Prior-window average"`
	CurrentAvg float64 `json:"current_avg" jsonschema:"Current-window average"`
}

type trendOutput struct {
	Metric        string  `json:"metric"`
	Timeframe     string  `json:"timeframe"`
	PercentChange float64 `json:"percent_change"`
	Direction     string  `json:"direction"`
	Message       string  `json:"message"`
}

type getTrendsInput struct {
	Metric string `json:"metric,omitempty" jsonschema:"Filter by metric name"`
}

// Tool handlers

func (s *Server) handleAddMetric(ctx context.Context, req *mcp.CallToolRequest, input addMetricInput) (*mcp.CallToolResult, metricOutput, error) {
	m := models.NewMetric(input.Date)
	set := applyMetricInput(m, input)
	if set == 0 {
		return nil, metricOutput{}, fmt.Errorf("no metric values given for %s", input.Date)
	}

	err := s.repo.CreateMetric(m)
	if err == nil {
		return nil, metricOutput{
			Date:    input.Date,
			Message: fmt.Sprintf("Recorded %d values for %s", set, input.Date),
		}, nil
	}
	if !storage.IsConstraintViolation(err) {
		return nil, metricOutput{}, fmt.Errorf("failed to add metrics: %w", err)
	}

	// The date is already logged; merge the given values into that row.
	existing, err := s.repo.GetMetric(input.Date)
	if err != nil {
		return nil, metricOutput{}, fmt.Errorf("failed to load existing metrics: %w", err)
	}
	applyMetricInput(existing, input)
	if err := s.repo.UpdateMetric(existing); err != nil {
		return nil, metricOutput{}, fmt.Errorf("failed to update metrics: %w", err)
	}

	return nil, metricOutput{
		Date:    input.Date,
		Updated: true,
		Message: fmt.Sprintf("Updated %d values for %s", set, input.Date),
	}, nil
}

// applyMetricInput copies the set input fields onto m, returning how many
// fields were given.
func applyMetricInput(m *models.Metric, input addMetricInput) int {
	set := 0
	assign := func(dst **int, src *int) {
		if src != nil {
			v := *src
			*dst = &v
			set++
		}
	}
	assign(&m.SleepScore, input.SleepScore)
	assign(&m.SleepDurationSeconds, input.SleepDuration)
	assign(&m.DeepSleepSeconds, input.DeepSleep)
	assign(&m.RemSleepSeconds, input.RemSleep)
	assign(&m.BodyBattery, input.BodyBattery)
	assign(&m.StressAvg, input.StressAvg)
	assign(&m.RestingHR, input.RestingHR)
	assign(&m.HRVAvg, input.HRVAvg)
	assign(&m.IntensityMinutes, input.IntensityMinutes)
	assign(&m.Steps, input.Steps)
	return set
}

func (s *Server) handleGetMetrics(ctx context.Context, req *mcp.CallToolRequest, input getMetricsInput) (*mcp.CallToolResult, any, error) {
	if input.Date != "" {
		m, err := s.repo.GetMetric(input.Date)
		if err != nil {
			if storage.IsNotFound(err) {
				return nil, map[string]any{"message": fmt.Sprintf("No metrics for %s.", input.Date)}, nil
			}
			return nil, nil, fmt.Errorf("failed to get metrics: %w", err)
		}
		return nil, m, nil
	}

	if input.From != "" && input.To != "" {
		metrics, err := s.repo.ListMetricsRange(input.From, input.To)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list metrics: %w", err)
		}
		if len(metrics) == 0 {
			return nil, map[string]any{"message": "No metrics in range."}, nil
		}
		return nil, metrics, nil
	}

	if input.Limit <= 0 {
		input.Limit = 14
	}
	metrics, err := s.repo.ListMetrics(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	if len(metrics) == 0 {
		return nil, map[string]any{"message": "No metrics found."}, nil
	}
	return nil, metrics, nil
}

func (s *Server) handleDeleteMetric(ctx context.Context, req *mcp.CallToolRequest, input deleteMetricInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMetric(input.Date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete metrics: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted metrics for %s", input.Date),
	}, nil
}

func (s *Server) handleLogVitalScore(ctx context.Context, req *mcp.CallToolRequest, input logVitalScoreInput) (*mcp.CallToolResult, scoreOutput, error) {
	score := models.NewVitalScore(input.Date, input.Score)
	if input.Sleep != nil {
		score.WithSleepComponent(*input.Sleep)
	}
	if input.Recovery != nil {
		score.WithRecoveryComponent(*input.Recovery)
	}
	if input.Strain != nil {
		score.WithStrainComponent(*input.Strain)
	}
	if input.Recommendation != "" {
		score.WithRecommendation(input.Recommendation)
	}

	if err := s.repo.SetVitalScore(score); err != nil {
		if storage.IsConstraintViolation(err) {
			return nil, scoreOutput{}, fmt.Errorf("a vital score for %s already exists; delete it before logging a new one", input.Date)
		}
		return nil, scoreOutput{}, fmt.Errorf("failed to log vital score: %w", err)
	}

	return nil, scoreOutput{
		Date:    input.Date,
		Score:   input.Score,
		Message: fmt.Sprintf("Logged vital score %d for %s", input.Score, input.Date),
	}, nil
}

func (s *Server) handleGetVitalScores(ctx context.Context, req *mcp.CallToolRequest, input getVitalScoresInput) (*mcp.CallToolResult, any, error) {
	if input.Date != "" {
		score, err := s.repo.GetVitalScore(input.Date)
		if err != nil {
			if storage.IsNotFound(err) {
				return nil, map[string]any{"message": fmt.Sprintf("No vital score for %s.", input.Date)}, nil
			}
			return nil, nil, fmt.Errorf("failed to get vital score: %w", err)
		}
		return nil, score, nil
	}

	if input.Limit <= 0 {
		input.Limit = 14
	}
	scores, err := s.repo.ListVitalScores(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list vital scores: %w", err)
	}
	if len(scores) == 0 {
		return nil, map[string]any{"message": "No vital scores found."}, nil
	}
	return nil, scores, nil
}

func (s *Server) handleRecordTrend(ctx context.Context, req *mcp.CallToolRequest, input recordTrendInput) (*mcp.CallToolResult, trendOutput, error) {
	if !models.IsValidTimeframe(input.Timeframe) {
		return nil, trendOutput{}, fmt.Errorf("unknown timeframe: %s", input.Timeframe)
	}

	tr := models.NewTrend(input.Metric, models.Timeframe(input.Timeframe), input.Baseline, input.CurrentAvg)
	if err := s.repo.UpsertTrend(tr); err != nil {
		return nil, trendOutput{}, fmt.Errorf("failed to record trend: %w", err)
	}

	return nil, trendOutput{
		Metric:        tr.Metric,
		Timeframe:     tr.Timeframe,
		PercentChange: tr.PercentChange,
		Direction:     tr.Direction,
		Message: fmt.Sprintf("%s over %s: %+.1f%% (%s)",
			tr.Metric, tr.Timeframe, tr.PercentChange, tr.Direction),
	}, nil
}

func (s *Server) handleGetTrends(ctx context.Context, req *mcp.CallToolRequest, input getTrendsInput) (*mcp.CallToolResult, any, error) {
	trends, err := s.repo.ListTrends()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list trends: %w", err)
	}

	if input.Metric != "" {
		var filtered []*models.Trend
		for _, tr := range trends {
			if tr.Metric == input.Metric {
				filtered = append(filtered, tr)
			}
		}
		trends = filtered
	}

	if len(trends) == 0 {
		return nil, map[string]any{"message": "No trends found."}, nil
	}
	return nil, trends, nil
}
