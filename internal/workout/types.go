package workout

// Code identifies a workout kind in raw sensor packages.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Workout is a bound record of one training session.
type Workout interface {
	// Label returns the human-readable workout type printed in summaries.
	Label() string
	// DurationHours returns the training duration in hours.
	DurationHours() float64
	// DistanceKm returns the distance covered in kilometers.
	DistanceKm() float64
	// MeanSpeedKmh returns the mean speed in km/h.
	MeanSpeedKmh() float64
	// CaloriesKcal returns the energy spent in kilocalories.
	CaloriesKcal() float64
}

// Kind is the formula profile of one workout type. It binds named params into a Workout.
type Kind interface {
	// Code returns the package code handled by this kind, used as the Dispatcher key.
	Code() Code
	// Label returns the human-readable name of this kind.
	Label() string
	// Keys returns the positional param keys this kind expects, in package order.
	Keys() []string
	// New validates the params and returns the bound Workout.
	New(params map[string]Param) (Workout, error)
}

// Param represents one raw field of a sensor package
type Param struct {
	Key   string      // Positional key (e.g., "duration_hours")
	Value interface{} // The decoded value (e.g., 15000, 1.5)
}

// Package is one raw sensor record: the kind code followed by positional fields.
type Package struct {
	Code   string `json:"code"`
	Fields []any  `json:"data"`
}
