package sensors

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	"github.com/kubev2v/fitness-tracker/internal/workout"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const headerCodeCell = "code"

// ParseWorkbook reads sensor packages from one sheet of an xlsx workbook.
// Column A holds the workout code and the following columns the numeric fields.
func ParseWorkbook(content []byte, sheet string) ([]workout.Package, error) {
	excelFile, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "error opening Excel file")
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if !slices.Contains(sheets, sheet) {
		return nil, errors.Errorf("sheet %q not found, workbook has %v", sheet, sheets)
	}

	rows, err := readSheet(excelFile, sheet)
	if err != nil {
		return nil, err
	}

	zap.S().Named("sensors").Debugf("Read %d rows from sheet %s", len(rows), sheet)

	pkgs := make([]workout.Package, 0, len(rows))
	for i, row := range trimRows(rows) {
		rowNumber := i + 1
		if isBlankRow(row) {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), headerCodeCell) {
			continue
		}

		pkg, err := parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "sheet %s row %d", sheet, rowNumber)
		}
		pkgs = append(pkgs, pkg)
	}

	zap.S().Named("sensors").Infof("Parsed %d packages from sheet %s", len(pkgs), sheet)

	return pkgs, nil
}

func readSheet(excelFile *excelize.File, sheetName string) ([][]string, error) {
	rows, err := excelFile.GetRows(sheetName)
	if err != nil {
		zap.S().Named("sensors").Warnf("Could not read %s sheet: %v", sheetName, err)
		return nil, errors.Wrapf(err, "reading sheet %s", sheetName)
	}
	return rows, nil
}

func parseRow(row []string) (workout.Package, error) {
	code := strings.TrimSpace(row[0])
	if code == "" {
		return workout.Package{}, errors.New("missing workout code in column A")
	}

	cells := trimTrailingBlanks(row[1:])
	fields := make([]any, 0, len(cells))
	for col, cell := range cells {
		value, err := parseNumber(cell)
		if err != nil {
			colName, _ := excelize.ColumnNumberToName(col + 2)
			return workout.Package{}, errors.Wrapf(err, "column %s", colName)
		}
		fields = append(fields, value)
	}

	return workout.Package{Code: code, Fields: fields}, nil
}

// parseNumber returns an int for integral cells and a float64 otherwise.
func parseNumber(cell string) (any, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil, errors.New("empty cell")
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Errorf("%q is not a number", cell)
	}
	return f, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimTrailingBlanks(cells []string) []string {
	end := len(cells)
	for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}
	return cells[:end]
}

func trimRows(rows [][]string) [][]string {
	trimmed := make([][]string, len(rows))
	for i, row := range rows {
		trimmed[i] = trimTrailingBlanks(row)
	}
	return trimmed
}

// IsExcelFile reports whether content is a zip container excelize can open.
func IsExcelFile(content []byte) bool {
	if len(content) < 2 {
		return false
	}

	if content[0] == 0x50 && content[1] == 0x4B {
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return false
		}
		defer f.Close()
		return true
	}

	return false
}
