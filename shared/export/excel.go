package export

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName      = "Report"
	defaultSheet   = "Sheet1"
	headerRow      = 4
	minColumnWidth = 10
	maxColumnWidth = 60
)

// Excel lays out the title in A1, the generation time in A2, a bold grey header on row 4 and
// data from row 5.
func Excel(table Table, generatedAt time.Time) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	titleStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9D9D9"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#808080", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err = file.SetCellValue(sheetName, "A1", table.Title); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}

	if err = file.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, fmt.Errorf("failed to style title: %w", err)
	}

	if err = file.SetCellValue(sheetName, "A2", generatedLine(generatedAt)); err != nil {
		return nil, fmt.Errorf("failed to write timestamp: %w", err)
	}

	widths := make([]int, len(table.Columns))

	for col, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}

		if err = file.SetCellValue(sheetName, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}

		if err = file.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}

		widths[col] = utf8.RuneCountInString(name)
	}

	for rowIndex, row := range table.Rows {
		for col, value := range row {
			if col >= len(table.Columns) {
				break
			}

			cell, err := excelize.CoordinatesToCellName(col+1, headerRow+1+rowIndex)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve data cell: %w", err)
			}

			if err = file.SetCellValue(sheetName, cell, cellValue(value)); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}

			widths[col] = max(widths[col], utf8.RuneCountInString(text(value)))
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column: %w", err)
		}

		width = min(max(width+2, minColumnWidth), maxColumnWidth)

		if err = file.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func cellValue(value any) any {
	switch v := value.(type) {
	case decimal.Decimal:
		return v.InexactFloat64()
	case time.Time:
		return text(v)
	default:
		return v
	}
}
