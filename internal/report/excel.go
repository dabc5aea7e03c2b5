package report

import (
	"fmt"

	"github.com/fleetpaper/settlement-audit/internal/settlement"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// fieldTitles are the column headings used for each aggregated field.
var fieldTitles = map[settlement.Field]string{
	settlement.FieldGross:    "Balance Due",
	settlement.FieldMiles:    "Total Miles",
	settlement.FieldTolls:    "Tolls Subtotal",
	settlement.FieldExpenses: "Expense Deductions",
}

// ExcelWriter renders an aggregated report as a workbook for download.
type ExcelWriter struct {
	logger *zap.Logger
}

// NewExcelWriter creates an Excel report writer.
func NewExcelWriter(logger *zap.Logger) *ExcelWriter {
	return &ExcelWriter{logger: logger}
}

// Write builds a single-sheet workbook: a header row, one row per file,
// then total and missing summary rows. The caller owns closing the file.
func (w *ExcelWriter) Write(report *Report) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	title := fieldTitles[report.Field]
	if title == "" {
		title = string(report.Field)
	}

	header := []interface{}{"File", "Pickup Range", title}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	rowNum := 2
	for _, row := range report.Rows {
		var value interface{} = "NOT FOUND"
		switch {
		case row.Unreadable:
			value = "UNREADABLE"
		case row.Value != nil && report.Field == settlement.FieldMiles:
			value = int(*row.Value)
		case row.Value != nil:
			value = *row.Value
		}
		cells := []interface{}{row.FileName, row.DateRange, value}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		rowNum++
	}

	var total interface{} = report.Total
	if report.Field == settlement.FieldMiles {
		total = int(report.Total)
	}
	summary := [][]interface{}{
		{"Total", "", total},
		{"Files missing value", "", report.Missing},
	}
	for _, cells := range summary {
		row := cells
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
		rowNum++
	}

	w.logger.Debug("Excel report built",
		zap.String("field", string(report.Field)),
		zap.Int("rows", len(report.Rows)))

	return f, nil
}
