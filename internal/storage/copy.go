// ABOUTME: Data copy between summit stores.
// ABOUTME: Copies daily metrics, vital scores, and trends from source to destination.

package storage

import (
	"fmt"
)

// CopySummary holds counts of copied rows.
type CopySummary struct {
	Metrics int
	Scores  int
	Trends  int
}

// CopyData copies all rows from src to dst. Rows are created in the
// destination with fresh IDs; dates and metric/timeframe pairs carry
// the identity. The destination should be empty before calling this.
func CopyData(src, dst Repository) (*CopySummary, error) {
	summary := &CopySummary{}

	metrics, err := src.ListMetrics(0)
	if err != nil {
		return nil, fmt.Errorf("list source metrics: %w", err)
	}
	for _, m := range metrics {
		if err := dst.CreateMetric(m); err != nil {
			return nil, fmt.Errorf("create metric %s: %w", m.Date, err)
		}
		summary.Metrics++
	}

	scores, err := src.ListVitalScores(0)
	if err != nil {
		return nil, fmt.Errorf("list source vital scores: %w", err)
	}
	for _, s := range scores {
		if err := dst.SetVitalScore(s); err != nil {
			return nil, fmt.Errorf("set vital score %s: %w", s.Date, err)
		}
		summary.Scores++
	}

	trends, err := src.ListTrends()
	if err != nil {
		return nil, fmt.Errorf("list source trends: %w", err)
	}
	for _, tr := range trends {
		if err := dst.CreateTrend(tr); err != nil {
			return nil, fmt.Errorf("create trend %s/%s: %w", tr.Metric, tr.Timeframe, err)
		}
		summary.Trends++
	}

	return summary, nil
}
