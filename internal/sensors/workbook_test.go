package sensors_test

import (
	"bytes"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/kubev2v/fitness-tracker/internal/sensors"
	"github.com/kubev2v/fitness-tracker/internal/workout"
)

// Helper functions for Excel operations
func newSheet(f *excelize.File, sheet string) int {
	index, err := f.NewSheet(sheet)
	Expect(err).To(Succeed())
	return index
}

func setCellValue(f *excelize.File, sheet, ref string, value any) {
	Expect(f.SetCellValue(sheet, ref, value)).To(Succeed())
}

func writeBuffer(f *excelize.File, buf *bytes.Buffer) {
	_, err := f.WriteTo(buf)
	Expect(err).To(Succeed())
}

func columnToLetter(col int) string {
	name, _ := excelize.ColumnNumberToName(col + 1)
	return name
}

func createWorkbook(sheet string, rows [][]any) []byte {
	f := excelize.NewFile()
	defer f.Close()

	index := newSheet(f, sheet)
	for rowIndex, row := range rows {
		for colIndex, value := range row {
			if value == nil {
				continue
			}
			cellRef := columnToLetter(colIndex) + fmt.Sprintf("%d", rowIndex+1)
			setCellValue(f, sheet, cellRef, value)
		}
	}
	f.SetActiveSheet(index)

	var buf bytes.Buffer
	writeBuffer(f, &buf)
	return buf.Bytes()
}

var _ = Describe("ParseWorkbook", func() {
	It("reads every package row after the header", func() {
		content := createWorkbook("packages", [][]any{
			{"code", "f1", "f2", "f3", "f4", "f5"},
			{"SWM", 720, 1, 80, 25, 40},
			{"RUN", 15000, 1, 75},
			{"WLK", 9000, 0.75, 75, 180},
		})

		pkgs, err := sensors.ParseWorkbook(content, "packages")
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs).To(Equal([]workout.Package{
			{Code: "SWM", Fields: []any{720, 1, 80, 25, 40}},
			{Code: "RUN", Fields: []any{15000, 1, 75}},
			{Code: "WLK", Fields: []any{9000, 0.75, 75, 180}},
		}))
	})

	It("works without a header row and skips blank rows", func() {
		content := createWorkbook("packages", [][]any{
			{"RUN", 15000, 1, 75},
			{},
			{"WLK", 9000, 1, 75, 180},
		})

		pkgs, err := sensors.ParseWorkbook(content, "packages")
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs).To(HaveLen(2))
		Expect(pkgs[0].Code).To(Equal("RUN"))
		Expect(pkgs[1].Code).To(Equal("WLK"))
	})

	It("keeps unknown codes for the dispatcher to reject", func() {
		content := createWorkbook("packages", [][]any{
			{"BIK", 1, 2},
		})

		pkgs, err := sensors.ParseWorkbook(content, "packages")
		Expect(err).ToNot(HaveOccurred())
		Expect(pkgs).To(Equal([]workout.Package{{Code: "BIK", Fields: []any{1, 2}}}))
	})

	It("fails on a missing sheet", func() {
		content := createWorkbook("packages", [][]any{{"RUN", 15000, 1, 75}})

		_, err := sensors.ParseWorkbook(content, "other")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`sheet "other" not found`))
	})

	It("names the row and column of a non-numeric cell", func() {
		content := createWorkbook("packages", [][]any{
			{"code", "units"},
			{"RUN", 15000, "fast", 75},
		})

		_, err := sensors.ParseWorkbook(content, "packages")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("row 2"))
		Expect(err.Error()).To(ContainSubstring("column C"))
	})

	It("fails on a row with fields but no code", func() {
		content := createWorkbook("packages", [][]any{
			{nil, 15000, 1, 75},
		})

		_, err := sensors.ParseWorkbook(content, "packages")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("missing workout code"))
	})

	It("fails on content that is not a workbook", func() {
		_, err := sensors.ParseWorkbook([]byte("not a workbook"), "packages")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("IsExcelFile", func() {
	It("detects a workbook", func() {
		Expect(sensors.IsExcelFile(createWorkbook("packages", nil))).To(BeTrue())
	})

	It("rejects other content", func() {
		Expect(sensors.IsExcelFile([]byte("PK"))).To(BeFalse())
		Expect(sensors.IsExcelFile([]byte("packages: []"))).To(BeFalse())
		Expect(sensors.IsExcelFile(nil)).To(BeFalse())
	})
})
