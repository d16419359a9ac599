package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Rapor"

// ExcelExporter writes a single-sheet workbook using excelize
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Export(t *Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	row := 1
	if t.Title != "" {
		titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
		f.SetCellValue(sheetName, cellName(1, row), t.Title)
		f.SetCellStyle(sheetName, cellName(1, row), cellName(1, row), titleStyle)
		row++
		if t.Subtitle != "" {
			f.SetCellValue(sheetName, cellName(1, row), t.Subtitle)
			row++
		}
		row++
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor[1:]}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	// built-in format 4 is "#,##0.00"
	numberStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})
	stripedNumber, _ := f.NewStyle(&excelize.Style{
		NumFmt: 4,
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripeColor[1:]}},
	})
	striped, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripeColor[1:]}},
	})

	headerRow := row
	for col, h := range t.Headers {
		cell := cellName(col+1, row)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		colName, _ := excelize.ColumnNumberToName(col + 1)
		f.SetColWidth(sheetName, colName, colName, 18)
	}
	row++

	for i, values := range t.Rows {
		for col, v := range values {
			cell := cellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)

			style := 0
			switch {
			case t.NumericCols[col] && i%2 == 1:
				style = stripedNumber
			case t.NumericCols[col]:
				style = numberStyle
			case i%2 == 1:
				style = striped
			}
			if style != 0 {
				f.SetCellStyle(sheetName, cell, cell, style)
			}
		}
		row++
	}

	if len(t.Headers) > 0 {
		f.SetPanes(sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: cellName(1, headerRow+1),
			ActivePane:  "bottomLeft",
		})
		rangeRef := cellName(1, headerRow) + ":" + cellName(len(t.Headers), headerRow+len(t.Rows))
		f.AutoFilter(sheetName, rangeRef, nil)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) FileExtension() string {
	return ".xlsx"
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
