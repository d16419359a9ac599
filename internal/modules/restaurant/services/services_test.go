package services

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/repositories"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/shared/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var today = time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite:"+filepath.Join(t.TempDir(), "svc.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.MenuItem{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newOrderService(t *testing.T) (*OrderService, repositories.OrderRepo) {
	repo := repositories.NewOrderRepo(newTestDB(t))
	svc := NewOrderService(repo, export.NewService())
	svc.now = func() time.Time { return today }
	return svc, repo
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	valid := func() *models.CreateOrderRequest {
		return &models.CreateOrderRequest{
			UserID:      "u1",
			MenuGroup:   "Tatlı",
			ServiceType: "Paket Servis",
			ItemName:    "Künefe",
			Amount:      12.5,
		}
	}

	missing := valid()
	missing.ItemName = "  "
	_, err := svc.CreateOrder(ctx, missing)
	assert.ErrorIs(t, err, ErrMissingFields)

	negative := valid()
	negative.Amount = -3
	_, err = svc.CreateOrder(ctx, negative)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	badDate := valid()
	badDate.OrderDate = "12/06/2024"
	_, err = svc.CreateOrder(ctx, badDate)
	assert.ErrorIs(t, err, ErrInvalidDate)

	order, err := svc.CreateOrder(ctx, valid())
	require.NoError(t, err)
	assert.Equal(t, models.Date("2024-06-12"), order.OrderDate)
	assert.True(t, decimal.RequireFromString("12.5").Equal(order.Amount))
}

func TestExportOrders(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, &models.CreateOrderRequest{
		UserID: "u1", MenuGroup: "Tatlı", ServiceType: "Paket Servis", ItemName: "Künefe", Amount: 12.5,
	})
	require.NoError(t, err)

	file, err := svc.ExportOrders(ctx, models.OrderFilter{UserID: "u1"}, export.FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", file.Extension)
	assert.NotEmpty(t, file.Content)
}

func TestDashboardBuild(t *testing.T) {
	repo := repositories.NewOrderRepo(newTestDB(t))
	ctx := context.Background()

	orders := []models.Order{
		{UserID: "u1", OrderDate: "2024-05-30", ItemName: "Ayran", MenuGroup: "İçecek", ServiceType: "Paket Servis", Amount: decimal.RequireFromString("3")},
		{UserID: "u1", OrderDate: "2024-06-01", ItemName: "Adana", MenuGroup: "Ana Yemek", ServiceType: "Paket Servis", Amount: decimal.RequireFromString("20")},
		{UserID: "u1", OrderDate: "2024-06-02", ItemName: "Künefe", MenuGroup: "Tatlı", ServiceType: "Yerinde Tüketim", Amount: decimal.RequireFromString("10")},
		{UserID: "u1", OrderDate: "2024-06-02", ItemName: "Adana", MenuGroup: "Ana Yemek", ServiceType: "Yerinde Tüketim", Amount: decimal.RequireFromString("20")},
	}
	require.NoError(t, repo.CreateBatch(ctx, orders))

	svc := NewDashboardService(repo)
	d, err := svc.Build(ctx, DashboardQuery{UserID: "u1", Range: analytics.DateRange{Start: "2024-06-01"}})
	require.NoError(t, err)

	assert.Equal(t, 50.0, d.KPIs.TotalRevenue)
	assert.Equal(t, 3, d.KPIs.OrderCount)
	assert.Equal(t, []string{"01/06/2024", "02/06/2024"}, d.Revenue.Labels)
	assert.Equal(t, []string{"Ana Yemek", "Tatlı"}, d.MenuGroups.Labels)
	assert.Equal(t, []string{"Adana", "Künefe"}, d.TopItems.Labels)
	assert.Len(t, d.GroupOptions, 3)
	assert.Equal(t, models.Date("2024-05-30"), d.Window.FirstDate)

	filtered, err := svc.Build(ctx, DashboardQuery{UserID: "u1", MenuGroup: "Ana Yemek", Period: PeriodMonth})
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.KPIs.OrderCount)
	assert.Equal(t, []string{"2024-06"}, filtered.Revenue.Labels)
	assert.Equal(t, []float64{40}, filtered.Revenue.Data[0].Values)
}

func TestByMonth(t *testing.T) {
	got := byMonth([]analytics.Breakdown{
		{Key: "2024-06-02", Revenue: 1.1},
		{Key: "2024-05-31", Revenue: 2},
		{Key: "2024-06-01", Revenue: 2.2},
	})
	assert.Equal(t, []analytics.Breakdown{{Key: "2024-05", Revenue: 2}, {Key: "2024-06", Revenue: 3.3}}, got)
}

func TestSeedDemoOrders(t *testing.T) {
	db := newTestDB(t)
	orderRepo := repositories.NewOrderRepo(db)
	menuRepo := repositories.NewMenuItemRepo(db)
	ctx := context.Background()

	svc := NewSeedService(orderRepo, menuRepo)
	svc.now = func() time.Time { return today }
	svc.rng = rand.New(rand.NewPCG(1, 2))

	_, err := svc.SeedDemoOrders(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoMenuItems)

	menu := NewMenuService(menuRepo)
	_, err = menu.CreateItem(ctx, "Ayran", "İçecek")
	require.NoError(t, err)
	_, err = menu.CreateItem(ctx, "Künefe", "Tatlı")
	require.NoError(t, err)
	_, err = menu.CreateItem(ctx, "İskender", "Ana Yemek")
	require.NoError(t, err)

	n, err := svc.SeedDemoOrders(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, seedOrderCount, n)

	rows, err := orderRepo.FetchOrders(ctx, "u1", analytics.DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, seedOrderCount)

	for _, r := range rows {
		assert.True(t, r.OrderDate >= "2024-05-14" && r.OrderDate <= "2024-06-12", r.OrderDate)
		assert.Contains(t, seedServiceTypes, r.ServiceType)

		amount := r.Amount.InexactFloat64()
		base := seedBase(r.MenuGroup)
		assert.GreaterOrEqual(t, amount, base)
		assert.LessOrEqual(t, amount, base+seedSpread)
	}
}
