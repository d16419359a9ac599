package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const insertBatchSize = 100

type OrderRepo interface {
	FetchOrders(ctx context.Context, userID string, r analytics.DateRange) ([]analytics.OrderRecord, error)
	FetchFullContext(ctx context.Context, userID string) (*analytics.FullContext, error)
	Create(ctx context.Context, order *models.Order) error
	CreateBatch(ctx context.Context, orders []models.Order) error
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	MenuGroups(ctx context.Context, userID string) ([]string, error)
	Window(ctx context.Context, userID string) (*models.DateWindow, error)
}

type orderRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderRepo(db *gorm.DB) OrderRepo {
	return &orderRepo{db: db, now: time.Now}
}

func (r *orderRepo) scoped(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)
}

func applyRange(q *gorm.DB, dr analytics.DateRange) *gorm.DB {
	if dr.Start != "" {
		q = q.Where("order_date >= ?", dr.Start)
	}
	if dr.End != "" {
		q = q.Where("order_date <= ?", dr.End)
	}
	return q
}

// FetchOrders returns at most analytics.MaxFetchRows rows, newest first, so the
// cap always drops the oldest days.
func (r *orderRepo) FetchOrders(ctx context.Context, userID string, dr analytics.DateRange) ([]analytics.OrderRecord, error) {
	var orders []models.Order
	err := applyRange(r.scoped(ctx, userID), dr).
		Select("user_id", "amount", "menu_group", "service_type", "item_name", "order_date").
		Order("order_date DESC").
		Limit(analytics.MaxFetchRows).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return models.Records(orders), nil
}

// FetchFullContext runs the profile queries concurrently and fails if any of them fails.
func (r *orderRepo) FetchFullContext(ctx context.Context, userID string) (*analytics.FullContext, error) {
	since := analytics.FormatDate(analytics.MonthAgo(r.now()))
	fc := &analytics.FullContext{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.scoped(gctx, userID).Count(&fc.TotalOrders).Error
	})
	g.Go(func() error {
		return r.scoped(gctx, userID).Distinct("menu_group").Count(&fc.DistinctMenuGroups).Error
	})
	g.Go(func() error {
		return r.scoped(gctx, userID).Distinct("item_name").Count(&fc.DistinctItems).Error
	})
	g.Go(func() error {
		return r.scoped(gctx, userID).Distinct("service_type").Count(&fc.DistinctServiceTypes).Error
	})
	g.Go(func() error {
		top, err := r.topBy(gctx, userID, "item_name", "")
		fc.MostOrderedItem = top
		return err
	})
	g.Go(func() error {
		top, err := r.topBy(gctx, userID, "menu_group", since)
		fc.LastMonthTopMenuGroup = top
		return err
	})
	g.Go(func() error {
		top, err := r.topBy(gctx, userID, "item_name", since)
		fc.LastMonthTopItem = top
		return err
	})
	g.Go(func() error {
		return r.scoped(gctx, userID).Where("order_date >= ?", since).Count(&fc.LastMonthOrderCount).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build full context: %w", err)
	}

	fc.HighVolumeLastMonth = fc.LastMonthOrderCount >= analytics.HighVolumeThreshold
	return fc, nil
}

type countRow struct {
	Name  string
	Total int64
}

// topBy returns the most frequent value of column, or nil when the user has no rows.
// column is always one of the fixed dimension names, never request input.
func (r *orderRepo) topBy(ctx context.Context, userID, column, since string) (*analytics.ItemCount, error) {
	q := r.scoped(ctx, userID)
	if since != "" {
		q = q.Where("order_date >= ?", since)
	}

	var rows []countRow
	err := q.Select(column + " AS name, COUNT(*) AS total").
		Group(column).
		Order("total DESC, name ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &analytics.ItemCount{Name: rows[0].Name, Count: rows[0].Total}, nil
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) CreateBatch(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(orders, insertBatchSize).Error
}

// List returns the newest orders first.
func (r *orderRepo) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	q := applyRange(r.scoped(ctx, filter.UserID), filter.Range)
	if filter.MenuGroup != "" {
		q = q.Where("menu_group = ?", filter.MenuGroup)
	}

	limit := filter.Limit
	if limit <= 0 || limit > analytics.MaxFetchRows {
		limit = analytics.MaxFetchRows
	}

	var orders []models.Order
	err := q.Order("order_date DESC").Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepo) MenuGroups(ctx context.Context, userID string) ([]string, error) {
	var groups []string
	err := r.scoped(ctx, userID).Distinct().Order("menu_group ASC").Pluck("menu_group", &groups).Error
	return groups, err
}

// Window returns the first and last order day; both are empty when there are no orders.
func (r *orderRepo) Window(ctx context.Context, userID string) (*models.DateWindow, error) {
	var w models.DateWindow
	err := r.scoped(ctx, userID).
		Select("MIN(order_date) AS first_date, MAX(order_date) AS last_date").
		Scan(&w).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read order window: %w", err)
	}
	return &w, nil
}
