package kinds

import (
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

const (
	// ParamHeightCm height of the athlete in centimeters.
	ParamHeightCm = "height_cm"

	WalkingLabel = "SportsWalking"

	WalkingCaloriesWeightMultiplier = 0.035
	WalkingCaloriesSpeedMultiplier  = 0.029
)

// Compile-time assertions that the walking types implement the workout interfaces.
var (
	_ workout.Workout = (*SportsWalking)(nil)
	_ workout.Kind    = (*WalkingProfile)(nil)
)

// SportsWalking is a bound sports walking session.
type SportsWalking struct {
	record
	heightCm float64
}

// NewSportsWalking binds a sports walking session. It fails with *workout.ErrInvalidDuration
// unless durationHours is positive, and with *workout.ErrInvalidField unless heightCm is positive.
func NewSportsWalking(unitsTraveled int, durationHours, bodyWeightKg, heightCm float64) (*SportsWalking, error) {
	r, err := newRecord(unitsTraveled, durationHours, bodyWeightKg, StepLengthM)
	if err != nil {
		return nil, err
	}
	return newSportsWalking(r, heightCm)
}

func newSportsWalking(r record, heightCm float64) (*SportsWalking, error) {
	// NaN fails every comparison, so test for the valid range
	if !(heightCm > 0) {
		return nil, workout.NewErrInvalidField(ParamHeightCm, "must be > 0 cm, got %v", heightCm)
	}
	return &SportsWalking{record: r, heightCm: heightCm}, nil
}

// Label returns the SportsWalking label.
func (w *SportsWalking) Label() string { return WalkingLabel }

// MeanSpeedKmh is the step-based distance divided by duration.
func (w *SportsWalking) MeanSpeedKmh() float64 { return w.stepSpeedKmh() }

// HeightCm returns the athlete height the session was bound with.
func (w *SportsWalking) HeightCm() float64 { return w.heightCm }

// CaloriesKcal is (0.035 * weight + floor(speed^2 / height) * 0.029 * weight) * duration * 60.
// The speed term is floored, not divided exactly.
func (w *SportsWalking) CaloriesKcal() float64 {
	speed := w.MeanSpeedKmh()
	speedTerm := floorDiv(float64(speed*speed), w.heightCm)
	// both products are rounded before the sum so no fused multiply-add changes the result
	return (float64(WalkingCaloriesWeightMultiplier*w.bodyWeightKg) +
		float64(speedTerm*WalkingCaloriesSpeedMultiplier*w.bodyWeightKg)) *
		w.durationHours * MinutesInHour
}

// WalkingProfile binds WLK packages.
type WalkingProfile struct{}

// NewWalkingProfile creates the profile for WLK packages.
func NewWalkingProfile() *WalkingProfile {
	return &WalkingProfile{}
}

// Code returns the WLK package code.
func (p *WalkingProfile) Code() workout.Code { return workout.CodeWalking }

// Label returns the SportsWalking label.
func (p *WalkingProfile) Label() string { return WalkingLabel }

// Keys returns the positional keys of a WLK package.
func (p *WalkingProfile) Keys() []string {
	return []string{ParamUnitsTraveled, ParamDurationHours, ParamBodyWeightKg, ParamHeightCm}
}

// New builds a SportsWalking session from params.
func (p *WalkingProfile) New(params map[string]workout.Param) (workout.Workout, error) {
	r, err := recordFromParams(params, StepLengthM)
	if err != nil {
		return nil, err
	}
	height, err := getFloat(params, ParamHeightCm)
	if err != nil {
		return nil, err
	}
	w, err := newSportsWalking(r, height)
	if err != nil {
		return nil, err
	}
	return w, nil
}
