package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var generatedAt = time.Date(2024, 6, 12, 10, 30, 0, 0, time.UTC)

func sampleRows() []analytics.OrderRecord {
	return []analytics.OrderRecord{
		{OrderDate: "2024-06-01", MenuGroup: "Ana Yemek", ItemName: "İskender", ServiceType: "Paket Servis", Amount: decimal.RequireFromString("18.50")},
		{OrderDate: "2024-06-02", MenuGroup: "Tatlı", ItemName: "Künefe", ServiceType: "Yerinde Tüketim", Amount: decimal.RequireFromString("12")},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatExcel, f)

	f, err = ParseFormat(" pdf ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestOrdersTable(t *testing.T) {
	tbl := OrdersTable(sampleRows(), analytics.DateRange{Start: "2024-06-01", End: "2024-06-30"}, generatedAt)

	assert.Equal(t, "2024-06-01 - 2024-06-30", tbl.Subtitle)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []interface{}{"2024-06-01", "Ana Yemek", "İskender", "Paket Servis", 18.5}, tbl.Rows[0])
	assert.True(t, tbl.NumericCols[4])

	assert.Equal(t, "Tüm zamanlar", OrdersTable(nil, analytics.DateRange{}, generatedAt).Subtitle)
}

func TestRenderExcel(t *testing.T) {
	tbl := OrdersTable(sampleRows(), analytics.DateRange{}, generatedAt)

	file, err := NewService().Render(tbl, FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", file.Extension)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	// title, subtitle, blank, header
	header, err := wb.GetCellValue(sheetName, "C4")
	require.NoError(t, err)
	assert.Equal(t, "Ürün", header)

	item, err := wb.GetCellValue(sheetName, "C5")
	require.NoError(t, err)
	assert.Equal(t, "İskender", item)
}

func TestRenderPDF(t *testing.T) {
	tbl := BreakdownTable("Menü grubu gelirleri", "Menü Grubu",
		[]analytics.Breakdown{{Key: "Ana Yemek", Revenue: 120.5}, {Key: "İçecek", Revenue: 14}},
		analytics.DateRange{Start: "2024-06-01"}, generatedAt)

	file, err := NewService().Render(tbl, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestRenderRejectsEmptyHeaders(t *testing.T) {
	_, err := NewService().Render(&Table{Title: "x"}, FormatPDF)
	assert.Error(t, err)

	_, err = NewService().Render(&Table{Headers: []string{"a"}}, Format("csv"))
	assert.Error(t, err)
}
