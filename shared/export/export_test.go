package export_test

import (
	"bytes"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/export"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func dailyTable() export.Table {
	return export.Table{
		Title:   "Daily Sales Report - 2024-01-01",
		Columns: []string{"Employee", "Total Sales", "Transactions"},
		Rows: [][]any{
			{"Waiter One", decimal.RequireFromString("50.00"), 2},
			{"Receptionist", decimal.RequireFromString("150.25"), 1},
		},
	}
}

var generatedAt = time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)

func TestExcel(t *testing.T) {
	data, err := export.Render(constant.ExportFormatExcel, dailyTable(), generatedAt)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer file.Close()

	title, err := file.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Daily Sales Report - 2024-01-01", title)

	generated, err := file.GetCellValue("Report", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Generated: 2024-01-01 18:30:00", generated)

	header, err := file.GetCellValue("Report", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Total Sales", header)

	employee, err := file.GetCellValue("Report", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Waiter One", employee)

	rows, err := file.GetRows("Report")
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}

func TestPDF(t *testing.T) {
	data, err := export.Render(constant.ExportFormatPDF, dailyTable(), generatedAt)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRender_EmptyRows(t *testing.T) {
	table := dailyTable()
	table.Rows = nil

	data, err := export.Render(constant.ExportFormatPDF, table, generatedAt)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRender_Errors(t *testing.T) {
	_, err := export.Render("csv", dailyTable(), generatedAt)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)

	_, err = export.Render(constant.ExportFormatExcel, export.Table{Title: "empty"}, generatedAt)
	assert.ErrorIs(t, err, export.ErrEmptyTable)
}

func TestFormatHelpers(t *testing.T) {
	assert.True(t, export.IsSupported("excel"))
	assert.True(t, export.IsSupported("PDF"))
	assert.False(t, export.IsSupported("csv"))

	assert.Equal(t, constant.ContentTypePDF, export.ContentType("pdf"))
	assert.Equal(t, constant.ContentTypeXLSX, export.ContentType("excel"))
	assert.Equal(t, "pdf", export.Extension("pdf"))
	assert.Equal(t, "xlsx", export.Extension("excel"))
}
