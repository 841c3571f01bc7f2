// Package structured renders summaries as JSON or YAML documents.
package structured

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/kubev2v/fitness-tracker/internal/service/report/types"
	"github.com/kubev2v/fitness-tracker/internal/workout"
	"sigs.k8s.io/yaml"
)

type document struct {
	Summaries []workout.Summary `json:"summaries"`
}

type Renderer struct {
	format types.ReportFormat
}

func NewJSONRenderer() *Renderer {
	return &Renderer{format: types.ReportFormatJSON}
}

func NewYAMLRenderer() *Renderer {
	return &Renderer{format: types.ReportFormatYAML}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return r.format
}

// Render marshals the summaries with every number rounded to the display precision.
func (r *Renderer) Render(data *types.ReportData) (string, error) {
	doc := document{Summaries: make([]workout.Summary, 0, len(data.Summaries))}
	for _, s := range data.Summaries {
		doc.Summaries = append(doc.Summaries, rounded(s))
	}

	switch r.format {
	case types.ReportFormatJSON:
		marshalled, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshalling summaries: %w", err)
		}
		return string(marshalled) + "\n", nil
	case types.ReportFormatYAML:
		marshalled, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("marshalling summaries: %w", err)
		}
		return string(marshalled), nil
	default:
		return "", fmt.Errorf("unsupported structured format: %s", r.format)
	}
}

func rounded(s workout.Summary) workout.Summary {
	return workout.Summary{
		Kind:          s.Kind,
		DurationHours: round(s.DurationHours),
		DistanceKm:    round(s.DistanceKm),
		MeanSpeedKmh:  round(s.MeanSpeedKmh),
		CaloriesKcal:  round(s.CaloriesKcal),
	}
}

func round(v float64) float64 {
	scale := math.Pow10(types.DisplayPrecision)
	return math.Round(v*scale) / scale
}
