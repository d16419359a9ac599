package analytics

// Summary holds the KPI triple shown on the dashboard and in chat answers.
type Summary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	OrderCount   int     `json:"orderCount"`
	AverageOrder float64 `json:"averageOrder"`
}

// Summarize computes revenue, order count and average basket over rows.
func Summarize(rows []OrderRecord) Summary {
	total := Aggregate(rows, AggregateQuery{Metric: MetricSum, Field: FieldAmount})
	avg := Aggregate(rows, AggregateQuery{Metric: MetricAvg, Field: FieldAmount})
	return Summary{
		TotalRevenue: total.Rows[0].Value,
		OrderCount:   len(rows),
		AverageOrder: avg.Rows[0].Value,
	}
}

// Breakdown is revenue per dimension value, highest first.
type Breakdown struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
}

// RevenueBy sums amount per dimension value. limit <= 0 keeps every group.
func RevenueBy(rows []OrderRecord, groupBy GroupBy, limit int) []Breakdown {
	res := Aggregate(rows, AggregateQuery{
		Metric:  MetricSum,
		Field:   FieldAmount,
		GroupBy: groupBy,
		Limit:   limit,
	})
	out := make([]Breakdown, 0, len(res.Rows))
	for _, r := range res.Rows {
		out = append(out, Breakdown{Key: r.KeyString(), Revenue: r.Value})
	}
	return out
}

// TopItems returns the best-selling items by revenue.
func TopItems(rows []OrderRecord, limit int) []Breakdown {
	return RevenueBy(rows, GroupItemName, limit)
}

// MenuGroupTotals returns revenue per menu group.
func MenuGroupTotals(rows []OrderRecord) []Breakdown {
	return RevenueBy(rows, GroupMenuGroup, 0)
}

// ServiceTypeTotals returns revenue per service type.
func ServiceTypeTotals(rows []OrderRecord) []Breakdown {
	return RevenueBy(rows, GroupServiceType, 0)
}

// DayStats describes the most recent day that has orders.
type DayStats struct {
	Date         string  `json:"date"`
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// LatestDayStats finds the max order date and totals that day. Nil when rows is empty.
func LatestDayStats(rows []OrderRecord) *DayStats {
	if len(rows) == 0 {
		return nil
	}

	last := rows[0].OrderDate
	for _, r := range rows[1:] {
		if r.OrderDate > last {
			last = r.OrderDate
		}
	}

	sameDay := make([]OrderRecord, 0)
	for _, r := range rows {
		if r.OrderDate == last {
			sameDay = append(sameDay, r)
		}
	}

	return &DayStats{
		Date:         last,
		Count:        len(sameDay),
		TotalRevenue: SumAmount(sameDay).Round(2).InexactFloat64(),
	}
}
