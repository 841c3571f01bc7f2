package service

import (
	"fmt"

	"github.com/kubev2v/fitness-tracker/internal/service/report/csv"
	"github.com/kubev2v/fitness-tracker/internal/service/report/structured"
	"github.com/kubev2v/fitness-tracker/internal/service/report/text"
	"github.com/kubev2v/fitness-tracker/internal/service/report/types"
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportData = types.ReportData

const (
	ReportFormatText = types.ReportFormatText
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatJSON = types.ReportFormatJSON
	ReportFormatYAML = types.ReportFormatYAML
)

type ReportService struct {
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewReportService() *ReportService {
	service := &ReportService{
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
	}

	for _, renderer := range []types.ReportRenderer{
		text.NewRenderer(),
		csv.NewRenderer(),
		structured.NewJSONRenderer(),
		structured.NewYAMLRenderer(),
	} {
		service.renderers[renderer.SupportedFormat()] = renderer
	}

	return service
}

func (r *ReportService) GenerateReport(summaries []workout.Summary, format types.ReportFormat) (string, error) {
	renderer, exists := r.renderers[format]
	if !exists {
		return "", fmt.Errorf("unsupported report format: %s", format)
	}

	return renderer.Render(&types.ReportData{Summaries: summaries})
}
