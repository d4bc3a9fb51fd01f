package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageWidth  = 190.0
	rowHeight  = 7.0
	headHeight = 8.0
)

// PDF renders the table on A4 portrait with a grey header and striped, bordered rows.
func PDF(table Table, generatedAt time.Time) ([]byte, error) {
	pdf := document(table, generatedAt)

	var buf bytes.Buffer

	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// document lays the table out. Text is translated from UTF-8 to the cp1252 encoding of the core fonts.
func document(table Table, generatedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)

	footer := generatedLine(generatedAt)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s - Page %d", footer, pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 10, tr(table.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth, 6, tr(footer), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	width := pageWidth / float64(len(table.Columns))

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)

	for _, name := range table.Columns {
		pdf.CellFormat(width, headHeight, tr(name), "1", 0, "C", true, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	for rowIndex, row := range table.Rows {
		fill := rowIndex%2 == 1
		if fill {
			pdf.SetFillColor(245, 245, 245)
		}

		for col := range table.Columns {
			var value any
			if col < len(row) {
				value = row[col]
			}

			align := "L"
			if col > 0 {
				align = "R"
			}

			pdf.CellFormat(width, rowHeight, tr(text(value)), "1", 0, align, fill, 0, "")
		}

		pdf.Ln(-1)
	}

	return pdf
}
