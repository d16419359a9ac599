package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/repositories"
	"github.com/shopspring/decimal"
)

const dashboardTopItems = 10

// Period is the bucket size of the revenue line
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// DashboardQuery is what the dashboard filter bar sends.
type DashboardQuery struct {
	UserID    string
	Range     analytics.DateRange
	MenuGroup string
	Period    Period
}

// Dashboard is everything the analytics page renders for one filter state.
type Dashboard struct {
	Range        analytics.DateRange    `json:"range"`
	MenuGroup    string                 `json:"menuGroup,omitempty"`
	KPIs         analytics.Summary      `json:"kpis"`
	StatCards    []analytics.StatCard   `json:"statCards"`
	Revenue      analytics.ChartData    `json:"revenue"`
	MenuGroups   analytics.ChartData    `json:"menuGroups"`
	ServiceTypes analytics.PieChartData `json:"serviceTypes"`
	TopItems     analytics.ChartData    `json:"topItems"`
	GroupOptions []string               `json:"groupOptions"`
	Window       *models.DateWindow     `json:"window"`
}

type DashboardService struct {
	orderRepo repositories.OrderRepo
}

func NewDashboardService(orderRepo repositories.OrderRepo) *DashboardService {
	return &DashboardService{orderRepo: orderRepo}
}

// Build loads the filtered orders once and derives every widget from them.
func (s *DashboardService) Build(ctx context.Context, q DashboardQuery) (*Dashboard, error) {
	rows, err := s.orderRepo.FetchOrders(ctx, q.UserID, q.Range)
	if err != nil {
		return nil, err
	}
	rows = analytics.FilterRows(rows, analytics.Filters{MenuGroup: q.MenuGroup})

	groups, err := s.orderRepo.MenuGroups(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu groups: %w", err)
	}
	window, err := s.orderRepo.Window(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	kpis := analytics.Summarize(rows)
	revenue := analytics.RevenueBy(rows, analytics.GroupDay, 0)
	if q.Period == PeriodMonth {
		revenue = byMonth(revenue)
	}

	return &Dashboard{
		Range:        q.Range,
		MenuGroup:    q.MenuGroup,
		KPIs:         kpis,
		StatCards:    analytics.ToStatCards(kpis),
		Revenue:      analytics.ToRevenueLineChart(revenue),
		MenuGroups:   analytics.ToBarChartData(analytics.MenuGroupTotals(rows), "Gelir"),
		ServiceTypes: analytics.ToPieChartData(analytics.ServiceTypeTotals(rows)),
		TopItems:     analytics.ToBarChartData(analytics.TopItems(rows, dashboardTopItems), "Gelir"),
		GroupOptions: groups,
		Window:       window,
	}, nil
}

// byMonth folds daily totals into YYYY-MM buckets, oldest first.
func byMonth(daily []analytics.Breakdown) []analytics.Breakdown {
	totals := make(map[string]decimal.Decimal)
	for _, d := range daily {
		if len(d.Key) < 7 {
			continue
		}
		month := d.Key[:7]
		totals[month] = totals[month].Add(decimal.NewFromFloat(d.Revenue))
	}

	out := make([]analytics.Breakdown, 0, len(totals))
	for month, total := range totals {
		out = append(out, analytics.Breakdown{Key: month, Revenue: total.Round(2).InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
