package service_test

import (
	"github.com/kubev2v/fitness-tracker/internal/service"
	"github.com/kubev2v/fitness-tracker/internal/workout"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReportService", func() {
	var (
		rs        *service.ReportService
		summaries []workout.Summary
	)

	BeforeEach(func() {
		rs = service.NewReportService()
		summaries = []workout.Summary{
			{Kind: "Swimming", DurationHours: 1, DistanceKm: 0.9935999999999999, MeanSpeedKmh: 1, CaloriesKcal: 336},
		}
	})

	DescribeTable("renders every supported format",
		func(format service.ReportFormat, expected string) {
			out, err := rs.GenerateReport(summaries, format)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring(expected))
		},
		Entry("text", service.ReportFormatText, "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000."),
		Entry("csv", service.ReportFormatCSV, "Swimming,1.000,0.994,1.000,336.000"),
		Entry("json", service.ReportFormatJSON, `"distance": 0.994`),
		Entry("yaml", service.ReportFormatYAML, "distance: 0.994"),
	)

	It("rejects an unknown format", func() {
		_, err := rs.GenerateReport(summaries, service.ReportFormat("html"))
		Expect(err).To(MatchError("unsupported report format: html"))
	})
})
