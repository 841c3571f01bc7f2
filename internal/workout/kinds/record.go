package kinds

import "github.com/kubev2v/fitness-tracker/internal/workout"

// Param prefix = positional keys shared by every kind, in package order
const (
	// ParamUnitsTraveled number of steps or strokes reported by the sensor.
	ParamUnitsTraveled = "units_traveled"
	// ParamDurationHours training duration in hours.
	ParamDurationHours = "duration_hours"
	// ParamBodyWeightKg weight of the athlete in kilograms.
	ParamBodyWeightKg = "body_weight_kg"

	MetersInKm    = 1000.0
	MinutesInHour = 60.0

	// StepLengthM distance covered by one step while running or walking.
	StepLengthM = 0.65
)

// record holds the fields every workout kind is bound with.
type record struct {
	unitsTraveled int
	durationHours float64
	bodyWeightKg  float64
	stepLengthM   float64
}

func newRecord(unitsTraveled int, durationHours, bodyWeightKg, stepLengthM float64) (record, error) {
	// NaN fails every comparison, so test for the valid range instead of <= 0
	if !(durationHours > 0) {
		return record{}, workout.NewErrInvalidDuration(durationHours)
	}
	return record{
		unitsTraveled: unitsTraveled,
		durationHours: durationHours,
		bodyWeightKg:  bodyWeightKg,
		stepLengthM:   stepLengthM,
	}, nil
}

// recordFromParams extracts the shared fields from params.
func recordFromParams(params map[string]workout.Param, stepLengthM float64) (record, error) {
	units, err := getInt(params, ParamUnitsTraveled)
	if err != nil {
		return record{}, err
	}
	duration, err := getFloat(params, ParamDurationHours)
	if err != nil {
		return record{}, err
	}
	weight, err := getFloat(params, ParamBodyWeightKg)
	if err != nil {
		return record{}, err
	}
	return newRecord(units, duration, weight, stepLengthM)
}

// DurationHours returns the training duration in hours.
func (r record) DurationHours() float64 { return r.durationHours }

// DistanceKm converts traveled units to kilometers using the kind's step length.
func (r record) DistanceKm() float64 {
	return float64(r.unitsTraveled) * r.stepLengthM / MetersInKm
}

// stepSpeedKmh is the mean speed derived from the step-based distance.
func (r record) stepSpeedKmh() float64 {
	return r.DistanceKm() / r.durationHours
}
