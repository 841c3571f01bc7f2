package kinds

import (
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

const (
	RunningLabel = "Running"

	RunningCaloriesSpeedMultiplier = 18.0
	RunningCaloriesSpeedShift      = 20.0
)

// Compile-time assertions that the running types implement the workout interfaces.
var (
	_ workout.Workout = (*Running)(nil)
	_ workout.Kind    = (*RunningProfile)(nil)
)

// Running is a bound running session.
type Running struct {
	record
}

// NewRunning binds a running session. It fails with *workout.ErrInvalidDuration
// unless durationHours is positive.
func NewRunning(unitsTraveled int, durationHours, bodyWeightKg float64) (*Running, error) {
	r, err := newRecord(unitsTraveled, durationHours, bodyWeightKg, StepLengthM)
	if err != nil {
		return nil, err
	}
	return &Running{record: r}, nil
}

// Label returns the Running label.
func (w *Running) Label() string { return RunningLabel }

// MeanSpeedKmh is the step-based distance divided by duration.
func (w *Running) MeanSpeedKmh() float64 { return w.stepSpeedKmh() }

// CaloriesKcal is (18 * speed - 20) * weight / 1000 * duration * 60.
func (w *Running) CaloriesKcal() float64 {
	// the conversion keeps the product rounded on its own, so it is never fused with the shift
	return (float64(RunningCaloriesSpeedMultiplier*w.MeanSpeedKmh()) - RunningCaloriesSpeedShift) *
		w.bodyWeightKg / MetersInKm * w.durationHours * MinutesInHour
}

// RunningProfile binds RUN packages.
type RunningProfile struct{}

// NewRunningProfile creates the profile for RUN packages.
func NewRunningProfile() *RunningProfile {
	return &RunningProfile{}
}

// Code returns the RUN package code.
func (p *RunningProfile) Code() workout.Code { return workout.CodeRunning }

// Label returns the Running label.
func (p *RunningProfile) Label() string { return RunningLabel }

// Keys returns the positional keys of a RUN package.
func (p *RunningProfile) Keys() []string {
	return []string{ParamUnitsTraveled, ParamDurationHours, ParamBodyWeightKg}
}

// New builds a Running session from params.
func (p *RunningProfile) New(params map[string]workout.Param) (workout.Workout, error) {
	r, err := recordFromParams(params, StepLengthM)
	if err != nil {
		return nil, err
	}
	return &Running{record: r}, nil
}
