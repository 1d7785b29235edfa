// ABOUTME: VitalScore model for derived daily wellness scores.
// ABOUTME: One score per date; components are optional parts of the composite.
package models

import (
	"fmt"
	"time"
)

// VitalScore represents the derived wellness score for one date.
type VitalScore struct {
	ID                int64
	Date              string
	Score             int
	SleepComponent    *int
	RecoveryComponent *int
	StrainComponent   *int
	Recommendation    *string
	CreatedAt         time.Time
}

// NewVitalScore creates a VitalScore for the given date.
func NewVitalScore(date string, score int) *VitalScore {
	return &VitalScore{Date: date, Score: score}
}

// WithSleepComponent sets the sleep component of the score.
func (v *VitalScore) WithSleepComponent(c int) *VitalScore {
	v.SleepComponent = &c
	return v
}

// WithRecoveryComponent sets the recovery component of the score.
func (v *VitalScore) WithRecoveryComponent(c int) *VitalScore {
	v.RecoveryComponent = &c
	return v
}

// WithStrainComponent sets the strain component of the score.
func (v *VitalScore) WithStrainComponent(c int) *VitalScore {
	v.StrainComponent = &c
	return v
}

// WithRecommendation sets the recommendation text.
func (v *VitalScore) WithRecommendation(text string) *VitalScore {
	v.Recommendation = &text
	return v
}

// Validate checks the date format and that the score and any present
// components fall in the 0-100 band. How components aggregate into the
// composite score is up to the caller; no consistency rule is checked here.
func (v *VitalScore) Validate() error {
	if _, err := time.Parse(DateFormat, v.Date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", v.Date)
	}
	if v.Score < 0 || v.Score > 100 {
		return fmt.Errorf("score must be 0-100, got %d", v.Score)
	}
	components := map[string]*int{
		"sleep_component":    v.SleepComponent,
		"recovery_component": v.RecoveryComponent,
		"strain_component":   v.StrainComponent,
	}
	for name, c := range components {
		if c != nil && (*c < 0 || *c > 100) {
			return fmt.Errorf("%s must be 0-100, got %d", name, *c)
		}
	}
	return nil
}
