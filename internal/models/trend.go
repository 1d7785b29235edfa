// ABOUTME: Trend model for detected directional changes in a metric.
// ABOUTME: Keyed by (metric, timeframe); a newer detection replaces the old one.
package models

import (
	"fmt"
	"time"
)

// Timeframe is the window a trend is computed over.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "7d"
	TimeframeMonth   Timeframe = "30d"
	TimeframeQuarter Timeframe = "90d"
)

// AllTimeframes returns all valid trend timeframes.
var AllTimeframes = []Timeframe{TimeframeWeek, TimeframeMonth, TimeframeQuarter}

// IsValidTimeframe checks if a string is a valid timeframe.
func IsValidTimeframe(s string) bool {
	for _, tf := range AllTimeframes {
		if string(tf) == s {
			return true
		}
	}
	return false
}

// Trend directions.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// flatBand is the percent-change magnitude below which a trend reads as flat.
const flatBand = 0.5

// Trend represents a detected change in a named metric over a timeframe.
// The metric name follows the health_metrics columns by convention but is
// not constrained to them.
type Trend struct {
	ID            int64
	Metric        string
	Timeframe     string
	Baseline      float64
	CurrentAvg    float64
	PercentChange float64
	Direction     string
	DetectedAt    time.Time
}

// NewTrend creates a Trend, deriving percent change and direction from the
// baseline and current average.
func NewTrend(metric string, timeframe Timeframe, baseline, currentAvg float64) *Trend {
	t := &Trend{
		Metric:     metric,
		Timeframe:  string(timeframe),
		Baseline:   baseline,
		CurrentAvg: currentAvg,
	}
	t.PercentChange, t.Direction = computeChange(baseline, currentAvg)
	return t
}

// computeChange derives percent change and direction. A zero baseline has no
// defined percent change and reads as flat.
func computeChange(baseline, currentAvg float64) (float64, string) {
	if baseline == 0 {
		return 0, DirectionFlat
	}
	pct := (currentAvg - baseline) / baseline * 100
	switch {
	case pct > flatBand:
		return pct, DirectionUp
	case pct < -flatBand:
		return pct, DirectionDown
	default:
		return pct, DirectionFlat
	}
}

// Validate checks the metric name and timeframe.
func (t *Trend) Validate() error {
	if t.Metric == "" {
		return fmt.Errorf("metric is required")
	}
	if !IsValidTimeframe(t.Timeframe) {
		return fmt.Errorf("invalid timeframe %q: expected one of %v", t.Timeframe, AllTimeframes)
	}
	return nil
}
