package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/kubev2v/fitness-tracker/internal/service/report/types"
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

var header = []string{"training_type", "duration", "distance", "speed", "calories"}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	csvRows := make([][]string, 0, len(data.Summaries)+1)
	csvRows = append(csvRows, header)

	for _, s := range data.Summaries {
		csvRows = append(csvRows, summaryRow(s))
	}

	return r.convertRowsToCSV(csvRows)
}

func summaryRow(s workout.Summary) []string {
	return []string{
		s.Kind,
		formatNumber(s.DurationHours),
		formatNumber(s.DistanceKm),
		formatNumber(s.MeanSpeedKmh),
		formatNumber(s.CaloriesKcal),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', types.DisplayPrecision, 64)
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.String(), nil
}
