package analytics

import (
	"fmt"
	"sort"
	"time"
)

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"`   // "line", "bar"
	Labels []string      `json:"labels"` // X-axis labels
	Data   []ChartSeries `json:"data"`   // Y-axis data series
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// PieChartData represents pie chart specific data
type PieChartData struct {
	Type   string    `json:"type"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// StatCard represents a summary statistic card
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// ToRevenueLineChart plots daily revenue in chronological order with dd/MM/yyyy labels.
func ToRevenueLineChart(daily []Breakdown) ChartData {
	sorted := make([]Breakdown, len(daily))
	copy(sorted, daily)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	labels := make([]string, len(sorted))
	values := make([]float64, len(sorted))
	for i, b := range sorted {
		labels[i] = formatDayLabel(b.Key)
		values[i] = b.Revenue
	}

	return ChartData{
		Type:   "line",
		Labels: labels,
		Data:   []ChartSeries{{Name: "Gelir", Values: values}},
	}
}

// ToBarChartData converts breakdown rows to bar chart format
func ToBarChartData(rows []Breakdown, seriesName string) ChartData {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, b := range rows {
		labels[i] = b.Key
		values[i] = b.Revenue
	}

	return ChartData{
		Type:   "bar",
		Labels: labels,
		Data:   []ChartSeries{{Name: seriesName, Values: values}},
	}
}

// ToPieChartData converts breakdown rows to pie chart format
func ToPieChartData(rows []Breakdown) PieChartData {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, b := range rows {
		labels[i] = b.Key
		values[i] = b.Revenue
	}

	return PieChartData{
		Type:   "pie",
		Labels: labels,
		Values: values,
	}
}

// ToStatCards renders the KPI cards
func ToStatCards(s Summary) []StatCard {
	return []StatCard{
		{Title: "Toplam Gelir", Value: FormatLira(s.TotalRevenue), Icon: "revenue"},
		{Title: "Ortalama Sipariş", Value: FormatLira(s.AverageOrder), Icon: "average"},
		{Title: "Sipariş Sayısı", Value: fmt.Sprintf("%d", s.OrderCount), Icon: "orders"},
	}
}

// FormatLira formats an amount as "₺1234.50".
func FormatLira(v float64) string {
	return fmt.Sprintf("₺%.2f", v)
}

func formatDayLabel(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
