package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
)

func strPtr(s string) *string { return &s }

func TestParseQuerySpecSanitization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want analytics.QuerySpec
	}{
		{
			name: "sum with bogus field is coerced to amount",
			raw:  `{"metric":"sum","field":"count_of_orders","groupBy":"menu_group","limit":5}`,
			want: analytics.QuerySpec{Metric: analytics.MetricSum, Field: "amount", GroupBy: analytics.GroupMenuGroup, Limit: 5},
		},
		{
			name: "unknown groupBy becomes none",
			raw:  `{"metric":"avg","field":"amount","groupBy":"bogus"}`,
			want: analytics.QuerySpec{Metric: analytics.MetricAvg, Field: "amount", GroupBy: analytics.GroupNone, Limit: 20},
		},
		{
			name: "missing groupBy and limit get defaults",
			raw:  `{"metric":"count"}`,
			want: analytics.QuerySpec{Metric: analytics.MetricCount, Field: "amount", GroupBy: analytics.GroupNone, Limit: 20},
		},
		{
			name: "limit clamped high",
			raw:  `{"metric":"sum","groupBy":"item_name","limit":1000}`,
			want: analytics.QuerySpec{Metric: analytics.MetricSum, Field: "amount", GroupBy: analytics.GroupItemName, Limit: 100},
		},
		{
			name: "limit clamped low",
			raw:  `{"metric":"sum","groupBy":"day","limit":-3}`,
			want: analytics.QuerySpec{Metric: analytics.MetricSum, Field: "amount", GroupBy: analytics.GroupDay, Limit: 1},
		},
		{
			name: "fenced json with range and filters",
			raw: "```json\n" +
				`{"metric":"count","groupBy":"service_type","range":{"start":"2024-06-01","end":"2024-06-30"},"filters":{"menu_group":"Tatlı"}}` +
				"\n```",
			want: analytics.QuerySpec{
				Metric:  analytics.MetricCount,
				Field:   "amount",
				GroupBy: analytics.GroupServiceType,
				Limit:   20,
				Range:   analytics.DateRange{Start: "2024-06-01", End: "2024-06-30"},
				Filters: analytics.Filters{MenuGroup: "Tatlı"},
			},
		},
		{
			name: "numeric string limit",
			raw:  `{"metric":"sum","groupBy":"item_name","limit":"10"}`,
			want: analytics.QuerySpec{Metric: analytics.MetricSum, Field: "amount", GroupBy: analytics.GroupItemName, Limit: 10},
		},
		{
			name: "non numeric limit falls back to default",
			raw:  `{"metric":"sum","groupBy":"item_name","limit":"many"}`,
			want: analytics.QuerySpec{Metric: analytics.MetricSum, Field: "amount", GroupBy: analytics.GroupItemName, Limit: 20},
		},
		{
			name: "null limit falls back to default",
			raw:  `{"metric":"count","limit":null}`,
			want: analytics.QuerySpec{Metric: analytics.MetricCount, Field: "amount", GroupBy: analytics.GroupNone, Limit: 20},
		},
		{
			name: "empty string range means all history",
			raw:  `{"metric":"sum","range":"","filters":""}`,
			want: analytics.QuerySpec{Metric: analytics.MetricSum, Field: "amount", GroupBy: analytics.GroupNone, Limit: 20},
		},
		{
			name: "array range is ignored",
			raw:  `{"metric":"avg","range":["2024-06-01","2024-06-30"]}`,
			want: analytics.QuerySpec{Metric: analytics.MetricAvg, Field: "amount", GroupBy: analytics.GroupNone, Limit: 20},
		},
		{
			name: "bare fence",
			raw:  "```\n{\"metric\":\"sum\"}\n```",
			want: analytics.QuerySpec{Metric: analytics.MetricSum, Field: "amount", GroupBy: analytics.GroupNone, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuerySpec(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuerySpecRejects(t *testing.T) {
	_, err := ParseQuerySpec(`{"metric":"invalid","field":"amount"}`)
	assert.ErrorIs(t, err, ErrInvalidMetric)

	_, err = ParseQuerySpec(`{"field":"amount"}`)
	assert.ErrorIs(t, err, ErrInvalidMetric)

	_, err = ParseQuerySpec("Elbette! İşte sorgunuz: {\"metric\":\"sum\"}")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidMetric)
}

func TestRenderQueryResult(t *testing.T) {
	ungrouped := analytics.QueryResult{
		Rows:    []analytics.ResultRow{{Value: 150}},
		Metric:  analytics.MetricSum,
		GroupBy: analytics.GroupNone,
	}
	assert.Equal(t, "Veritabanı sonucu: 150 TL.", RenderQueryResult(ungrouped))

	count := analytics.QueryResult{
		Rows:    []analytics.ResultRow{{Value: 7}},
		Metric:  analytics.MetricCount,
		GroupBy: analytics.GroupNone,
	}
	assert.Equal(t, "Veritabanı sonucu: 7.", RenderQueryResult(count))

	grouped := analytics.QueryResult{
		Rows: []analytics.ResultRow{
			{Key: strPtr("Ana Yemek"), Value: 47.25},
			{Key: strPtr("Tatlı"), Value: 23.4},
		},
		Metric:  analytics.MetricAvg,
		GroupBy: analytics.GroupMenuGroup,
	}
	assert.Equal(t, "Veritabanı sonuçları:\n1. Ana Yemek: 47.25 TL\n2. Tatlı: 23.4 TL", RenderQueryResult(grouped))
}
