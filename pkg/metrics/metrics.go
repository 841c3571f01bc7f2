package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	fitnessTracker = "fitness_tracker"

	// Workout metrics
	workoutSummariesTotal = "workout_summaries_total"
	workoutErrorsTotal    = "workout_errors_total"

	// Labels
	kindLabel   = "kind"
	reasonLabel = "reason"
)

// Error reasons
const (
	ReasonUnknownKind     = "unknown_kind"
	ReasonArityMismatch   = "arity_mismatch"
	ReasonInvalidDuration = "invalid_duration"
	ReasonInvalidField    = "invalid_field"
	ReasonOther           = "other"
)

var workoutSummariesTotalLabels = []string{
	kindLabel,
}

var workoutErrorsTotalLabels = []string{
	reasonLabel,
}

/**
* Metrics definition
**/
var workoutSummariesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: fitnessTracker,
		Name:      workoutSummariesTotal,
		Help:      "number of workout summaries computed",
	},
	workoutSummariesTotalLabels,
)

var workoutErrorsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: fitnessTracker,
		Name:      workoutErrorsTotal,
		Help:      "number of sensor packages rejected, by reason",
	},
	workoutErrorsTotalLabels,
)

func IncreaseWorkoutSummariesTotalMetric(kind string) {
	labels := prometheus.Labels{
		kindLabel: kind,
	}
	workoutSummariesTotalMetric.With(labels).Inc()
}

func IncreaseWorkoutErrorsTotalMetric(reason string) {
	labels := prometheus.Labels{
		reasonLabel: reason,
	}
	workoutErrorsTotalMetric.With(labels).Inc()
}

// WriteText writes every metric of the default registry in the text exposition format.
func WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(workoutSummariesTotalMetric)
	prometheus.MustRegister(workoutErrorsTotalMetric)
}
