// ABOUTME: Tests for Trend model.
// ABOUTME: Validates percent-change derivation, direction, and timeframes.
package models

import (
	"math"
	"testing"
)

func TestNewTrendDerivation(t *testing.T) {
	tests := []struct {
		name          string
		baseline      float64
		currentAvg    float64
		wantPct       float64
		wantDirection string
	}{
		{"rising", 50, 55, 10, DirectionUp},
		{"falling", 60, 48, -20, DirectionDown},
		{"unchanged", 70, 70, 0, DirectionFlat},
		{"inside flat band", 1000, 1003, 0.3, DirectionFlat},
		{"just above flat band", 1000, 1006, 0.6, DirectionUp},
		{"zero baseline", 0, 42, 0, DirectionFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrend("resting_hr", TimeframeWeek, tt.baseline, tt.currentAvg)
			if math.Abs(tr.PercentChange-tt.wantPct) > 1e-9 {
				t.Errorf("PercentChange = %f, want %f", tr.PercentChange, tt.wantPct)
			}
			if tr.Direction != tt.wantDirection {
				t.Errorf("Direction = %s, want %s", tr.Direction, tt.wantDirection)
			}
		})
	}
}

func TestNewTrendFields(t *testing.T) {
	tr := NewTrend("steps", TimeframeMonth, 8000, 9500)

	if tr.Metric != "steps" {
		t.Errorf("Metric = %s, want steps", tr.Metric)
	}
	if tr.Timeframe != "30d" {
		t.Errorf("Timeframe = %s, want 30d", tr.Timeframe)
	}
	if tr.Baseline != 8000 || tr.CurrentAvg != 9500 {
		t.Errorf("Baseline/CurrentAvg = %f/%f, want 8000/9500", tr.Baseline, tr.CurrentAvg)
	}
}

func TestIsValidTimeframe(t *testing.T) {
	for _, tf := range AllTimeframes {
		if !IsValidTimeframe(string(tf)) {
			t.Errorf("expected %s to be valid", tf)
		}
	}
	if IsValidTimeframe("fortnight") {
		t.Error("expected fortnight to be invalid")
	}
}

func TestTrendValidate(t *testing.T) {
	if err := NewTrend("resting_hr", TimeframeWeek, 50, 52).Validate(); err != nil {
		t.Errorf("Validate failed for valid trend: %v", err)
	}

	if err := NewTrend("", TimeframeWeek, 50, 52).Validate(); err == nil {
		t.Error("expected error for empty metric")
	}

	if err := NewTrend("resting_hr", Timeframe("2w"), 50, 52).Validate(); err == nil {
		t.Error("expected error for unknown timeframe")
	}
}
