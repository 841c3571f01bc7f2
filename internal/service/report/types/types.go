package types

import (
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

type ReportRenderer interface {
	Render(data *ReportData) (string, error)
	SupportedFormat() ReportFormat
}

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

// SupportedFormats lists every format with a renderer, in display order.
var SupportedFormats = []string{
	string(ReportFormatText),
	string(ReportFormatCSV),
	string(ReportFormatJSON),
	string(ReportFormatYAML),
}

type ReportData struct {
	Summaries []workout.Summary
}

// DisplayPrecision is the number of decimal digits shown for every numeric value.
const DisplayPrecision = 3
