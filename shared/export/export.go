// Package export renders report tables as spreadsheet or PDF attachments.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel/shared/constant"

	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrEmptyTable        = errors.New("export table has no columns")
)

// Table is a titled grid of values. Decimal and numeric cells stay numeric in spreadsheets.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// Render produces the document bytes for format (excel or pdf).
func Render(format string, table Table, generatedAt time.Time) ([]byte, error) {
	if len(table.Columns) == 0 {
		return nil, ErrEmptyTable
	}

	switch strings.ToLower(format) {
	case constant.ExportFormatExcel:
		return Excel(table, generatedAt)
	case constant.ExportFormatPDF:
		return PDF(table, generatedAt)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// IsSupported reports whether format can be rendered.
func IsSupported(format string) bool {
	switch strings.ToLower(format) {
	case constant.ExportFormatExcel, constant.ExportFormatPDF:
		return true
	default:
		return false
	}
}

func ContentType(format string) string {
	if strings.ToLower(format) == constant.ExportFormatPDF {
		return constant.ContentTypePDF
	}

	return constant.ContentTypeXLSX
}

func Extension(format string) string {
	if strings.ToLower(format) == constant.ExportFormatPDF {
		return "pdf"
	}

	return "xlsx"
}

func generatedLine(generatedAt time.Time) string {
	return "Generated: " + generatedAt.Format(constant.ExportTimeFmt)
}

// text formats a cell for fixed-width output.
func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case decimal.Decimal:
		return v.StringFixed(constant.DecimalPlacesCurrency)
	case float64:
		return decimal.NewFromFloat(v).StringFixed(constant.DecimalPlacesCurrency)
	case time.Time:
		return v.Format(constant.DateFormat)
	default:
		return fmt.Sprintf("%v", v)
	}
}
