package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// core fonts only cover cp1252, so the Turkish letters outside it are folded
var pdfFold = strings.NewReplacer(
	"ğ", "g", "Ğ", "G",
	"ş", "s", "Ş", "S",
	"ı", "i", "İ", "I",
)

// PDFExporter draws the table on landscape A4 pages using gofpdf
type PDFExporter struct {
	fontSize float64
}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{fontSize: 9}
}

func (p *PDFExporter) Export(t *Table, w io.Writer) error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("no headers provided")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfFold.Replace(s)) }

	pdf.AddPage()

	if t.Title != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, text(t.Title))
		pdf.Ln(10)
	}
	if t.Subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, text(t.Subtitle))
		pdf.Ln(6)
	}
	if !t.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(0, 5, "Olusturulma: "+t.GeneratedAt.Format("2006-01-02 15:04"))
		pdf.Ln(8)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(t.Headers))

	header := func() {
		r, g, b := hexToRGB(headerColor)
		pdf.SetFont("Arial", "B", p.fontSize)
		pdf.SetFillColor(r, g, b)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range t.Headers {
			pdf.CellFormat(colWidth, 7, text(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", p.fontSize)
	}
	header()

	sr, sg, sb := hexToRGB(stripeColor)
	for i, values := range t.Rows {
		if pdf.GetY()+6 > pageHeight-bottom {
			pdf.AddPage()
			header()
		}

		pdf.SetFillColor(sr, sg, sb)
		for col, v := range values {
			align := "L"
			cell := fmt.Sprintf("%v", v)
			if t.NumericCols[col] {
				align = "R"
				if f, ok := v.(float64); ok {
					cell = fmt.Sprintf("%.2f", f)
				}
			}
			pdf.CellFormat(colWidth, 6, text(cell), "1", 0, align, i%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (p *PDFExporter) ContentType() string {
	return "application/pdf"
}

func (p *PDFExporter) FileExtension() string {
	return ".pdf"
}

// hexToRGB converts "#RRGGBB"; anything else is white
func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 255, 255, 255
	}
	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
