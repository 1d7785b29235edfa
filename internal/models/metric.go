// ABOUTME: Metric model and MetricField enum for daily health data.
// ABOUTME: One record per calendar date; every measurement column is optional.
package models

import (
	"fmt"
	"time"
)

// DateFormat is the canonical YYYY-MM-DD layout for record dates.
const DateFormat = "2006-01-02"

// MetricField names a numeric column of a daily metric record.
type MetricField string

const (
	// Sleep
	FieldSleepScore    MetricField = "sleep_score"
	FieldSleepDuration MetricField = "sleep_duration_seconds"
	FieldDeepSleep     MetricField = "deep_sleep_seconds"
	FieldRemSleep      MetricField = "rem_sleep_seconds"

	// Recovery
	FieldBodyBattery MetricField = "body_battery"
	FieldStressAvg   MetricField = "stress_avg"
	FieldRestingHR   MetricField = "resting_hr"
	FieldHRVAvg      MetricField = "hrv_avg"

	// Activity
	FieldIntensityMinutes MetricField = "intensity_minutes"
	FieldSteps            MetricField = "steps"
)

// MetricFieldUnits maps metric fields to their display units.
var MetricFieldUnits = map[MetricField]string{
	FieldSleepScore:       "pts",
	FieldSleepDuration:    "s",
	FieldDeepSleep:        "s",
	FieldRemSleep:         "s",
	FieldBodyBattery:      "pts",
	FieldStressAvg:        "pts",
	FieldRestingHR:        "bpm",
	FieldHRVAvg:           "ms",
	FieldIntensityMinutes: "min",
	FieldSteps:            "steps",
}

// AllMetricFields returns all valid metric fields in display order.
var AllMetricFields = []MetricField{
	FieldSleepScore, FieldSleepDuration, FieldDeepSleep, FieldRemSleep,
	FieldBodyBattery, FieldStressAvg, FieldRestingHR, FieldHRVAvg,
	FieldIntensityMinutes, FieldSteps,
}

// IsValidMetricField checks if a string names a metric field.
func IsValidMetricField(s string) bool {
	for _, f := range AllMetricFields {
		if string(f) == s {
			return true
		}
	}
	return false
}

// Metric represents one day of health measurements.
type Metric struct {
	ID                   int64
	Date                 string
	BodyBattery          *int
	SleepScore           *int
	SleepDurationSeconds *int
	DeepSleepSeconds     *int
	RemSleepSeconds      *int
	StressAvg            *int
	RestingHR            *int
	HRVAvg               *int
	IntensityMinutes     *int
	Steps                *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewMetric creates an empty Metric for the given date.
func NewMetric(date string) *Metric {
	return &Metric{Date: date}
}

// WithBodyBattery sets the body battery level.
func (m *Metric) WithBodyBattery(v int) *Metric {
	m.BodyBattery = &v
	return m
}

// WithSleepScore sets the sleep score.
func (m *Metric) WithSleepScore(v int) *Metric {
	m.SleepScore = &v
	return m
}

// WithSleepDuration sets total sleep duration in seconds.
func (m *Metric) WithSleepDuration(seconds int) *Metric {
	m.SleepDurationSeconds = &seconds
	return m
}

// WithDeepSleep sets deep sleep duration in seconds.
func (m *Metric) WithDeepSleep(seconds int) *Metric {
	m.DeepSleepSeconds = &seconds
	return m
}

// WithRemSleep sets REM sleep duration in seconds.
func (m *Metric) WithRemSleep(seconds int) *Metric {
	m.RemSleepSeconds = &seconds
	return m
}

// WithStressAvg sets the average stress level.
func (m *Metric) WithStressAvg(v int) *Metric {
	m.StressAvg = &v
	return m
}

// WithRestingHR sets the resting heart rate.
func (m *Metric) WithRestingHR(v int) *Metric {
	m.RestingHR = &v
	return m
}

// WithHRVAvg sets the average heart-rate variability.
func (m *Metric) WithHRVAvg(v int) *Metric {
	m.HRVAvg = &v
	return m
}

// WithIntensityMinutes sets the intensity minutes.
func (m *Metric) WithIntensityMinutes(v int) *Metric {
	m.IntensityMinutes = &v
	return m
}

// WithSteps sets the step count.
func (m *Metric) WithSteps(v int) *Metric {
	m.Steps = &v
	return m
}

// FieldValue returns the value stored for a metric field, or nil if unset.
func (m *Metric) FieldValue(f MetricField) *int {
	switch f {
	case FieldBodyBattery:
		return m.BodyBattery
	case FieldSleepScore:
		return m.SleepScore
	case FieldSleepDuration:
		return m.SleepDurationSeconds
	case FieldDeepSleep:
		return m.DeepSleepSeconds
	case FieldRemSleep:
		return m.RemSleepSeconds
	case FieldStressAvg:
		return m.StressAvg
	case FieldRestingHR:
		return m.RestingHR
	case FieldHRVAvg:
		return m.HRVAvg
	case FieldIntensityMinutes:
		return m.IntensityMinutes
	case FieldSteps:
		return m.Steps
	}
	return nil
}

// Validate checks the date format and that every present value is non-negative.
// The schema does not enforce non-negativity; writers must.
func (m *Metric) Validate() error {
	if _, err := time.Parse(DateFormat, m.Date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", m.Date)
	}
	for _, f := range AllMetricFields {
		if v := m.FieldValue(f); v != nil && *v < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", f, *v)
		}
	}
	return nil
}
