package report

import (
	"testing"

	"github.com/fleetpaper/settlement-audit/internal/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExcelWriterLayout(t *testing.T) {
	value := 1234.56
	rep := &Report{
		Field: settlement.FieldGross,
		Rows: []Row{
			{FileName: "week1.pdf", DateRange: "01/05/24 - 01/19/24", Value: &value},
			{FileName: "week2.pdf"},
			{FileName: "week3.pdf", Unreadable: true},
		},
		Total:   1234.56,
		Missing: 2,
	}

	workbook, err := NewExcelWriter(zap.NewNop()).Write(rep)
	require.NoError(t, err)
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)

	cell := func(ref string) string {
		v, err := workbook.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "File", cell("A1"))
	assert.Equal(t, "Balance Due", cell("C1"))

	assert.Equal(t, "week1.pdf", cell("A2"))
	assert.Equal(t, "01/05/24 - 01/19/24", cell("B2"))
	assert.Equal(t, "1234.56", cell("C2"))

	assert.Equal(t, "NOT FOUND", cell("C3"))
	assert.Equal(t, "UNREADABLE", cell("C4"))

	assert.Equal(t, "Total", cell("A5"))
	assert.Equal(t, "1234.56", cell("C5"))
	assert.Equal(t, "Files missing value", cell("A6"))
	assert.Equal(t, "2", cell("C6"))
}

func TestExcelWriterMilesAsWholeNumbers(t *testing.T) {
	value := 2951.0
	rep := &Report{
		Field: settlement.FieldMiles,
		Rows:  []Row{{FileName: "week1.pdf", Value: &value}},
		Total: 2951,
	}

	workbook, err := NewExcelWriter(zap.NewNop()).Write(rep)
	require.NoError(t, err)
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	v, err := workbook.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2951", v)
}
