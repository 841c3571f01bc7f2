package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kubev2v/fitness-tracker/internal/workout"
	"github.com/kubev2v/fitness-tracker/internal/workout/kinds"
	"github.com/kubev2v/fitness-tracker/pkg/metrics"
	"go.uber.org/zap"
)

// BatchResult is the outcome of one package of a batch. Exactly one of
// Summary and Err is set.
type BatchResult struct {
	ID      uuid.UUID
	Index   int
	Package workout.Package
	Summary *workout.Summary
	Err     error
}

// TrackerService turns raw sensor packages into workout summaries.
type TrackerService struct {
	dispatcher *workout.Dispatcher
	logger     *zap.Logger
}

// NewTrackerService creates a TrackerService with the swimming, running and walking kinds registered.
func NewTrackerService(logger *zap.Logger) *TrackerService {
	if logger == nil {
		logger = zap.NewNop()
	}

	dispatcher := workout.NewDispatcher()
	dispatcher.Register(kinds.NewSwimmingProfile())
	dispatcher.Register(kinds.NewRunningProfile())
	dispatcher.Register(kinds.NewWalkingProfile())

	return &TrackerService{
		dispatcher: dispatcher,
		logger:     logger.Named("tracker_service"),
	}
}

// Kinds returns the registered kinds in registration order.
func (ts *TrackerService) Kinds() []workout.Kind {
	codes := ts.dispatcher.Codes()
	result := make([]workout.Kind, 0, len(codes))
	for _, code := range codes {
		k, _ := ts.dispatcher.Lookup(string(code))
		result = append(result, k)
	}
	return result
}

// Summarize dispatches a single package and computes its summary.
func (ts *TrackerService) Summarize(pkg workout.Package) (*workout.Summary, error) {
	return ts.summarize(uuid.New(), pkg)
}

func (ts *TrackerService) summarize(id uuid.UUID, pkg workout.Package) (*workout.Summary, error) {
	logger := ts.logger.With(zap.String("record_id", id.String()), zap.String("code", pkg.Code))

	w, err := ts.dispatcher.Dispatch(pkg.Code, pkg.Fields)
	if err != nil {
		reason := errorReason(err)
		metrics.IncreaseWorkoutErrorsTotalMetric(reason)
		logger.Warn("package rejected", zap.String("reason", reason), zap.Error(err))
		return nil, err
	}

	summary := workout.Summarize(w)
	metrics.IncreaseWorkoutSummariesTotalMetric(summary.Kind)
	logger.Debug("package summarized", zap.String("kind", summary.Kind))

	return &summary, nil
}

// SummarizeBatch processes packages in order. With failFast the first failure
// stops the batch and is returned wrapped with the package position; the
// results gathered so far are returned alongside it. Otherwise every package
// yields a result and the error is nil.
func (ts *TrackerService) SummarizeBatch(pkgs []workout.Package, failFast bool) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(pkgs))

	for i, pkg := range pkgs {
		id := uuid.New()
		summary, err := ts.summarize(id, pkg)
		results = append(results, BatchResult{
			ID:      id,
			Index:   i,
			Package: pkg,
			Summary: summary,
			Err:     err,
		})
		if err != nil && failFast {
			return results, NewErrPackageFailed(i, pkg.Code, err)
		}
	}

	ts.logger.Info("batch processed",
		zap.Int("packages", len(pkgs)),
		zap.Int("failed", len(Failed(results))))

	return results, nil
}

// Failed returns the results that carry an error.
func Failed(results []BatchResult) []BatchResult {
	var failed []BatchResult
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Summaries returns the successful summaries in batch order.
func Summaries(results []BatchResult) []workout.Summary {
	summaries := make([]workout.Summary, 0, len(results))
	for _, r := range results {
		if r.Summary != nil {
			summaries = append(summaries, *r.Summary)
		}
	}
	return summaries
}

func errorReason(err error) string {
	var (
		unknownKind     *workout.ErrUnknownWorkoutKind
		arityMismatch   *workout.ErrArityMismatch
		invalidDuration *workout.ErrInvalidDuration
		invalidField    *workout.ErrInvalidField
	)

	switch {
	case errors.As(err, &unknownKind):
		return metrics.ReasonUnknownKind
	case errors.As(err, &arityMismatch):
		return metrics.ReasonArityMismatch
	case errors.As(err, &invalidDuration):
		return metrics.ReasonInvalidDuration
	case errors.As(err, &invalidField):
		return metrics.ReasonInvalidField
	default:
		return metrics.ReasonOther
	}
}
