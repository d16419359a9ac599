package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	rows := []OrderRecord{
		order("2024-06-01", "Adana Kebap", "Ana Yemek", "Paket Servis", "100"),
		order("2024-06-02", "Künefe", "Tatlı", "Yerinde Tüketim", "50"),
	}

	s := Summarize(rows)
	assert.Equal(t, 150.0, s.TotalRevenue)
	assert.Equal(t, 2, s.OrderCount)
	assert.Equal(t, 75.0, s.AverageOrder)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestBreakdowns(t *testing.T) {
	rows := sampleOrders()

	groups := MenuGroupTotals(rows)
	require.Len(t, groups, 3)
	assert.Equal(t, Breakdown{Key: "Ana Yemek", Revenue: 47.25}, groups[0])
	assert.Equal(t, Breakdown{Key: "Tatlı", Revenue: 23.43}, groups[1])
	assert.Equal(t, Breakdown{Key: "İçecek", Revenue: 6.15}, groups[2])

	services := ServiceTypeTotals(rows)
	require.Len(t, services, 2)
	assert.Equal(t, "Paket Servis", services[0].Key)
	assert.Equal(t, 46.33, services[0].Revenue)

	top := TopItems(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Adana Kebap", top[0].Key)
	assert.Equal(t, 35.5, top[0].Revenue)
	assert.Equal(t, "Baklava", top[1].Key)
}

func TestLatestDayStats(t *testing.T) {
	assert.Nil(t, LatestDayStats(nil))

	stats := LatestDayStats(sampleOrders())
	require.NotNil(t, stats)
	assert.Equal(t, "2024-06-03", stats.Date)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 28.98, stats.TotalRevenue)
}

func TestToRevenueLineChartIsChronological(t *testing.T) {
	daily := RevenueBy(sampleOrders(), GroupDay, 0)
	chart := ToRevenueLineChart(daily)

	assert.Equal(t, "line", chart.Type)
	assert.Equal(t, []string{"01/06/2024", "02/06/2024", "03/06/2024"}, chart.Labels)
	require.Len(t, chart.Data, 1)
	assert.Equal(t, []float64{21.75, 26.1, 28.98}, chart.Data[0].Values)
}

func TestToStatCards(t *testing.T) {
	cards := ToStatCards(Summary{TotalRevenue: 150, OrderCount: 2, AverageOrder: 75})
	require.Len(t, cards, 3)
	assert.Equal(t, "₺150.00", cards[0].Value)
	assert.Equal(t, "₺75.00", cards[1].Value)
	assert.Equal(t, "2", cards[2].Value)
}
