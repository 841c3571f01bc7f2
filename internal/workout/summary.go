package workout

// Summary is the computed result for one workout. Values keep full precision,
// rounding happens when a summary is rendered.
type Summary struct {
	Kind          string  `json:"training_type"`
	DurationHours float64 `json:"duration"`
	DistanceKm    float64 `json:"distance"`
	MeanSpeedKmh  float64 `json:"speed"`
	CaloriesKcal  float64 `json:"calories"`
}

// Summarize evaluates every formula of w once.
func Summarize(w Workout) Summary {
	return Summary{
		Kind:          w.Label(),
		DurationHours: w.DurationHours(),
		DistanceKm:    w.DistanceKm(),
		MeanSpeedKmh:  w.MeanSpeedKmh(),
		CaloriesKcal:  w.CaloriesKcal(),
	}
}
