package export

import (
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
)

// OrdersTable lists raw orders, one row each.
func OrdersTable(rows []analytics.OrderRecord, r analytics.DateRange, now time.Time) *Table {
	t := &Table{
		Title:       "Sipariş Listesi",
		Subtitle:    rangeCaption(r),
		GeneratedAt: now,
		Headers:     []string{"Tarih", "Menü Grubu", "Ürün", "Servis Türü", "Tutar (TL)"},
		NumericCols: map[int]bool{4: true},
	}
	for _, o := range rows {
		amount, _ := o.Amount.Round(2).Float64()
		t.Rows = append(t.Rows, []interface{}{o.OrderDate, o.MenuGroup, o.ItemName, o.ServiceType, amount})
	}
	return t
}

// BreakdownTable lists revenue per dimension value in the given order.
func BreakdownTable(title, keyHeader string, rows []analytics.Breakdown, r analytics.DateRange, now time.Time) *Table {
	t := &Table{
		Title:       title,
		Subtitle:    rangeCaption(r),
		GeneratedAt: now,
		Headers:     []string{"#", keyHeader, "Gelir (TL)"},
		NumericCols: map[int]bool{2: true},
	}
	for i, b := range rows {
		t.Rows = append(t.Rows, []interface{}{i + 1, b.Key, b.Revenue})
	}
	return t
}

func rangeCaption(r analytics.DateRange) string {
	switch {
	case r.IsUnbounded():
		return "Tüm zamanlar"
	case r.Start == "":
		return "… - " + r.End
	case r.End == "":
		return r.Start + " - …"
	default:
		return r.Start + " - " + r.End
	}
}
