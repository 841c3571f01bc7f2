package kinds

import (
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

const (
	// ParamPoolLengthM length of the pool in meters.
	ParamPoolLengthM = "pool_length_m"
	// ParamPoolLapsCount number of times the athlete swam the pool length.
	ParamPoolLapsCount = "pool_laps_count"

	SwimmingLabel = "Swimming"

	// SwimmingStepLengthM distance covered by one stroke. Used for DistanceKm only.
	SwimmingStepLengthM = 1.38

	SwimmingCaloriesSpeedShift       = 1.1
	SwimmingCaloriesWeightMultiplier = 2.0
)

// Compile-time assertions that the swimming types implement the workout interfaces.
var (
	_ workout.Workout = (*Swimming)(nil)
	_ workout.Kind    = (*SwimmingProfile)(nil)
)

// Swimming is a bound pool swimming session.
//
// DistanceKm counts strokes, MeanSpeedKmh uses the pool geometry. The two are not
// reconciled.
type Swimming struct {
	record
	poolLengthM   float64
	poolLapsCount int
}

// NewSwimming binds a swimming session. It fails with *workout.ErrInvalidDuration
// unless durationHours is positive.
func NewSwimming(unitsTraveled int, durationHours, bodyWeightKg, poolLengthM float64, poolLapsCount int) (*Swimming, error) {
	r, err := newRecord(unitsTraveled, durationHours, bodyWeightKg, SwimmingStepLengthM)
	if err != nil {
		return nil, err
	}
	return &Swimming{record: r, poolLengthM: poolLengthM, poolLapsCount: poolLapsCount}, nil
}

// Label returns the Swimming label.
func (w *Swimming) Label() string { return SwimmingLabel }

// MeanSpeedKmh is pool length * laps / 1000 / duration.
func (w *Swimming) MeanSpeedKmh() float64 {
	return w.poolLengthM * float64(w.poolLapsCount) / MetersInKm / w.durationHours
}

// CaloriesKcal is (speed + 1.1) * 2 * weight.
func (w *Swimming) CaloriesKcal() float64 {
	return (w.MeanSpeedKmh() + SwimmingCaloriesSpeedShift) * SwimmingCaloriesWeightMultiplier * w.bodyWeightKg
}

// SwimmingProfile binds SWM packages.
type SwimmingProfile struct{}

// NewSwimmingProfile creates the profile for SWM packages.
func NewSwimmingProfile() *SwimmingProfile {
	return &SwimmingProfile{}
}

// Code returns the SWM package code.
func (p *SwimmingProfile) Code() workout.Code { return workout.CodeSwimming }

// Label returns the Swimming label.
func (p *SwimmingProfile) Label() string { return SwimmingLabel }

// Keys returns the positional keys of a SWM package.
func (p *SwimmingProfile) Keys() []string {
	return []string{ParamUnitsTraveled, ParamDurationHours, ParamBodyWeightKg, ParamPoolLengthM, ParamPoolLapsCount}
}

// New builds a Swimming session from params.
func (p *SwimmingProfile) New(params map[string]workout.Param) (workout.Workout, error) {
	r, err := recordFromParams(params, SwimmingStepLengthM)
	if err != nil {
		return nil, err
	}
	length, err := getFloat(params, ParamPoolLengthM)
	if err != nil {
		return nil, err
	}
	laps, err := getInt(params, ParamPoolLapsCount)
	if err != nil {
		return nil, err
	}
	return &Swimming{record: r, poolLengthM: length, poolLapsCount: laps}, nil
}
