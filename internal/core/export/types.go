package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Format is the output file format
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

// ParseFormat accepts "excel", "xlsx" and "pdf", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excel", "xlsx":
		return FormatExcel, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// Exporter renders a table into one file format
type Exporter interface {
	Export(t *Table, w io.Writer) error
	ContentType() string
	FileExtension() string
}

// Table is a titled grid of cells. Numeric cells stay numeric in spreadsheets.
type Table struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Headers     []string
	Rows        [][]interface{}
	// NumericCols are right-aligned and get a two-decimal number format
	NumericCols map[int]bool
}

const (
	headerColor = "#4472C4"
	stripeColor = "#F2F2F2"
)
