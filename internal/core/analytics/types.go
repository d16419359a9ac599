package analytics

import "github.com/shopspring/decimal"

// OrderRecord is a read-only snapshot of one order row.
// OrderDate is an ISO "YYYY-MM-DD" string, so lexical order is chronological order.
type OrderRecord struct {
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	MenuGroup   string          `json:"menu_group"`
	ServiceType string          `json:"service_type"`
	ItemName    string          `json:"item_name"`
	OrderDate   string          `json:"order_date"`
}

// DateRange is an inclusive calendar window. Empty Start/End means unbounded on that side.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// IsUnbounded reports whether the range covers the entire history.
func (r DateRange) IsUnbounded() bool {
	return r.Start == "" && r.End == ""
}

// Contains compares date strings lexically, both bounds inclusive.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// Metric is the aggregate function applied to each partition
type Metric string

const (
	MetricSum   Metric = "sum"
	MetricAvg   Metric = "avg"
	MetricCount Metric = "count"
)

// GroupBy is the partitioning dimension
type GroupBy string

const (
	GroupNone        GroupBy = "none"
	GroupDay         GroupBy = "day"
	GroupMenuGroup   GroupBy = "menu_group"
	GroupServiceType GroupBy = "service_type"
	GroupItemName    GroupBy = "item_name"
)

// FieldAmount is the only numeric field orders carry.
const FieldAmount = "amount"

// Filters are exact, case-sensitive equality constraints. Empty string = no constraint.
type Filters struct {
	MenuGroup   string `json:"menu_group,omitempty"`
	ItemName    string `json:"item_name,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
}

// Match reports whether the record passes every set filter.
func (f Filters) Match(r OrderRecord) bool {
	if f.MenuGroup != "" && r.MenuGroup != f.MenuGroup {
		return false
	}
	if f.ItemName != "" && r.ItemName != f.ItemName {
		return false
	}
	if f.ServiceType != "" && r.ServiceType != f.ServiceType {
		return false
	}
	return true
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	return f.MenuGroup == "" && f.ItemName == "" && f.ServiceType == ""
}

// AggregateQuery describes one in-memory aggregation
type AggregateQuery struct {
	Metric  Metric
	Field   string
	GroupBy GroupBy
	Filters Filters
	Limit   int // 0 = no limit
}

// QuerySpec is a validated structured query, usually derived from model output.
type QuerySpec struct {
	Metric  Metric    `json:"metric"`
	Field   string    `json:"field"`
	GroupBy GroupBy   `json:"groupBy"`
	Limit   int       `json:"limit"`
	Range   DateRange `json:"range"`
	Filters Filters   `json:"filters"`
}

// ToQuery drops the range, which is applied by the store, not the engine.
func (s QuerySpec) ToQuery() AggregateQuery {
	return AggregateQuery{
		Metric:  s.Metric,
		Field:   s.Field,
		GroupBy: s.GroupBy,
		Filters: s.Filters,
		Limit:   s.Limit,
	}
}

// ResultRow is one aggregated value. Key is nil for ungrouped results.
type ResultRow struct {
	Key   *string `json:"key,omitempty"`
	Value float64 `json:"value"`
}

// KeyString returns the key or "" when ungrouped.
func (r ResultRow) KeyString() string {
	if r.Key == nil {
		return ""
	}
	return *r.Key
}

// QueryResult is the aggregation output, sorted by value descending when grouped.
type QueryResult struct {
	Rows    []ResultRow `json:"rows"`
	Unit    string      `json:"unit"`
	Metric  Metric      `json:"metric"`
	GroupBy GroupBy     `json:"groupBy"`
}

// ItemCount pairs a dimension value with an order count.
type ItemCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// MaxFetchRows caps how many order rows a single store fetch returns.
const MaxFetchRows = 5000

// HighVolumeThreshold is the trailing-month order count considered "high volume".
const HighVolumeThreshold = 450

// FullContext is the per-user aggregate profile used to enrich summary answers.
type FullContext struct {
	TotalOrders           int64      `json:"total_orders"`
	DistinctMenuGroups    int64      `json:"distinct_menu_groups"`
	DistinctItems         int64      `json:"distinct_items"`
	DistinctServiceTypes  int64      `json:"distinct_service_types"`
	MostOrderedItem       *ItemCount `json:"most_ordered_item"`
	LastMonthTopMenuGroup *ItemCount `json:"last_month_top_menu_group"`
	LastMonthTopItem      *ItemCount `json:"last_month_top_item"`
	LastMonthOrderCount   int64      `json:"last_month_order_count"`
	HighVolumeLastMonth   bool       `json:"high_volume_last_month"`
}
