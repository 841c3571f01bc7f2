package service_test

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kubev2v/fitness-tracker/internal/service"
	"github.com/kubev2v/fitness-tracker/internal/workout"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TrackerService", func() {
	var ts *service.TrackerService

	BeforeEach(func() {
		ts = service.NewTrackerService(zap.NewNop())
	})

	Context("Kinds", func() {
		It("registers swimming, running and walking in order", func() {
			codes := []workout.Code{}
			for _, k := range ts.Kinds() {
				codes = append(codes, k.Code())
			}
			Expect(codes).To(Equal([]workout.Code{workout.CodeSwimming, workout.CodeRunning, workout.CodeWalking}))
		})
	})

	Context("Summarize", func() {
		It("summarizes a swimming package", func() {
			summary, err := ts.Summarize(workout.Package{Code: "SWM", Fields: []any{720, 1, 80, 25, 40}})
			Expect(err).ToNot(HaveOccurred())
			Expect(summary.Kind).To(Equal("Swimming"))
			Expect(summary.DurationHours).To(Equal(1.0))
			Expect(summary.DistanceKm).To(BeNumerically("~", 0.9936, 1e-12))
			Expect(summary.MeanSpeedKmh).To(Equal(1.0))
			Expect(summary.CaloriesKcal).To(Equal(336.0))
		})

		It("summarizes a running package", func() {
			summary, err := ts.Summarize(workout.Package{Code: "RUN", Fields: []any{15000, 1, 75}})
			Expect(err).ToNot(HaveOccurred())
			Expect(summary.Kind).To(Equal("Running"))
			Expect(summary.DistanceKm).To(Equal(9.75))
			Expect(summary.MeanSpeedKmh).To(Equal(9.75))
			Expect(summary.CaloriesKcal).To(BeNumerically("~", 699.75, 1e-9))
		})

		It("summarizes a walking package", func() {
			summary, err := ts.Summarize(workout.Package{Code: "WLK", Fields: []any{9000, 1, 75, 180}})
			Expect(err).ToNot(HaveOccurred())
			Expect(summary.Kind).To(Equal("SportsWalking"))
			Expect(summary.DistanceKm).To(Equal(5.85))
			Expect(summary.CaloriesKcal).To(BeNumerically("~", 157.5, 1e-9))
		})

		It("rejects an unknown code", func() {
			summary, err := ts.Summarize(workout.Package{Code: "BIK", Fields: []any{1, 2, 3}})
			Expect(summary).To(BeNil())
			var unknown *workout.ErrUnknownWorkoutKind
			Expect(errors.As(err, &unknown)).To(BeTrue())
			Expect(unknown.Code).To(Equal("BIK"))
		})

		It("rejects a wrong field count", func() {
			_, err := ts.Summarize(workout.Package{Code: "RUN", Fields: []any{15000, 1}})
			var arity *workout.ErrArityMismatch
			Expect(errors.As(err, &arity)).To(BeTrue())
			Expect(arity.Expected).To(Equal(3))
			Expect(arity.Got).To(Equal(2))
		})

		It("rejects a zero walking height", func() {
			summary, err := ts.Summarize(workout.Package{Code: "WLK", Fields: []any{9000, 1, 75, 0}})
			Expect(summary).To(BeNil())
			var field *workout.ErrInvalidField
			Expect(errors.As(err, &field)).To(BeTrue())
			Expect(field.Key).To(Equal("height_cm"))
		})

		It("counts a zero walking height as a failed batch record", func() {
			results, err := ts.SummarizeBatch([]workout.Package{
				{Code: "RUN", Fields: []any{15000, 1, 75}},
				{Code: "WLK", Fields: []any{9000, 1, 75, 0}},
			}, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(service.Failed(results)).To(HaveLen(1))
			Expect(service.Summaries(results)).To(HaveLen(1))
		})

		It("rejects a zero duration", func() {
			_, err := ts.Summarize(workout.Package{Code: "WLK", Fields: []any{9000, 0, 75, 180}})
			var duration *workout.ErrInvalidDuration
			Expect(errors.As(err, &duration)).To(BeTrue())
		})
	})

	Context("SummarizeBatch", func() {
		var pkgs []workout.Package

		BeforeEach(func() {
			pkgs = []workout.Package{
				{Code: "SWM", Fields: []any{720, 1, 80, 25, 40}},
				{Code: "XYZ", Fields: []any{1}},
				{Code: "RUN", Fields: []any{15000, 1, 75}},
			}
		})

		It("processes every package when not failing fast", func() {
			results, err := ts.SummarizeBatch(pkgs, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(3))

			Expect(results[0].Summary).ToNot(BeNil())
			Expect(results[0].Err).To(BeNil())
			Expect(results[1].Summary).To(BeNil())
			Expect(results[1].Err).To(HaveOccurred())
			Expect(results[2].Summary.Kind).To(Equal("Running"))

			for i, r := range results {
				Expect(r.Index).To(Equal(i))
				Expect(r.ID).ToNot(Equal(uuid.Nil))
				Expect(r.Package).To(Equal(pkgs[i]))
			}

			failed := service.Failed(results)
			Expect(failed).To(HaveLen(1))
			Expect(failed[0].Package.Code).To(Equal("XYZ"))

			summaries := service.Summaries(results)
			Expect(summaries).To(HaveLen(2))
			Expect(summaries[0].Kind).To(Equal("Swimming"))
			Expect(summaries[1].Kind).To(Equal("Running"))
		})

		It("stops at the first failure when failing fast", func() {
			results, err := ts.SummarizeBatch(pkgs, true)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("package 1 (XYZ)"))
			Expect(results).To(HaveLen(2))

			var failed *service.ErrPackageFailed
			Expect(errors.As(err, &failed)).To(BeTrue())
			Expect(failed.Index).To(Equal(1))

			var unknown *workout.ErrUnknownWorkoutKind
			Expect(errors.As(err, &unknown)).To(BeTrue())
		})

		It("returns an empty result for an empty batch", func() {
			results, err := ts.SummarizeBatch(nil, true)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(BeEmpty())
			Expect(service.Failed(results)).To(BeEmpty())
		})

		It("assigns distinct record ids", func() {
			results, err := ts.SummarizeBatch(pkgs, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(results[0].ID).ToNot(Equal(results[2].ID))
		})
	})
})
