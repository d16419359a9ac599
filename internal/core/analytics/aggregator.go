package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// FilterRows keeps the rows matching f. Empty filters return rows as is.
func FilterRows(rows []OrderRecord, f Filters) []OrderRecord {
	if f.IsEmpty() {
		return rows
	}
	out := make([]OrderRecord, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate filters, groups and reduces rows in memory.
// Pipeline: filter → group → aggregate → sort → limit. Input rows are never modified.
func Aggregate(rows []OrderRecord, q AggregateQuery) QueryResult {
	groupBy := q.GroupBy
	if groupBy == "" {
		groupBy = GroupNone
	}
	field := q.Field
	if field == "" {
		field = FieldAmount
	}

	result := QueryResult{
		Unit:    field,
		Metric:  q.Metric,
		GroupBy: groupBy,
	}

	// 1. Filter
	filtered := FilterRows(rows, q.Filters)

	if groupBy == GroupNone {
		result.Rows = []ResultRow{{Value: reduce(filtered, q.Metric)}}
		return result
	}

	// 2. Group, keeping first-occurrence order
	partitions := make(map[string][]OrderRecord)
	order := make([]string, 0)
	for _, r := range filtered {
		key := dimensionValue(r, groupBy)
		if _, exists := partitions[key]; !exists {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], r)
	}

	// 3. Aggregate
	out := make([]ResultRow, 0, len(order))
	for _, key := range order {
		k := key
		out = append(out, ResultRow{Key: &k, Value: reduce(partitions[key], q.Metric)})
	}

	// 4. Sort (stable so ties keep first-occurrence order)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })

	// 5. Limit
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}

	result.Rows = out
	return result
}

// SumAmount totals the amount field exactly.
func SumAmount(rows []OrderRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}

// reduce applies the metric to one partition, rounding money to 2 decimals.
func reduce(rows []OrderRecord, metric Metric) float64 {
	switch metric {
	case MetricCount:
		return float64(len(rows))
	case MetricAvg:
		if len(rows) == 0 {
			return 0
		}
		avg := SumAmount(rows).Div(decimal.NewFromInt(int64(len(rows))))
		return avg.Round(2).InexactFloat64()
	default:
		return SumAmount(rows).Round(2).InexactFloat64()
	}
}

func dimensionValue(r OrderRecord, groupBy GroupBy) string {
	switch groupBy {
	case GroupDay:
		return r.OrderDate
	case GroupMenuGroup:
		return r.MenuGroup
	case GroupServiceType:
		return r.ServiceType
	case GroupItemName:
		return r.ItemName
	default:
		return ""
	}
}
