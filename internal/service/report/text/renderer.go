package text

import (
	"fmt"
	"strings"

	"github.com/kubev2v/fitness-tracker/internal/service/report/types"
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatText
}

// Render writes one message line per summary.
func (r *Renderer) Render(data *types.ReportData) (string, error) {
	var b strings.Builder
	for _, s := range data.Summaries {
		b.WriteString(Message(s))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Message formats a single summary, every number with three decimals.
func Message(s workout.Summary) string {
	return fmt.Sprintf(messageTemplate, s.Kind, s.DurationHours, s.DistanceKm, s.MeanSpeedKmh, s.CaloriesKcal)
}
