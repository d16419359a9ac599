package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingFields = errors.New("user_id, menu_group, service_type, item_name and amount are required")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidDate   = errors.New("order_date must be YYYY-MM-DD")
)

type OrderService struct {
	orderRepo repositories.OrderRepo
	exporter  *export.Service
	now       func() time.Time
}

func NewOrderService(orderRepo repositories.OrderRepo, exporter *export.Service) *OrderService {
	return &OrderService{orderRepo: orderRepo, exporter: exporter, now: time.Now}
}

// CreateOrder validates the form input and stores one order.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.MenuGroup = strings.TrimSpace(req.MenuGroup)
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	req.ItemName = strings.TrimSpace(req.ItemName)

	if req.UserID == "" || req.MenuGroup == "" || req.ServiceType == "" || req.ItemName == "" || req.Amount == 0 {
		return nil, ErrMissingFields
	}
	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	date := models.Date(strings.TrimSpace(req.OrderDate))
	if date == "" {
		date = models.Date(analytics.FormatDate(s.now()))
	}
	if !date.Valid() {
		return nil, ErrInvalidDate
	}

	order := &models.Order{
		UserID:      req.UserID,
		MenuGroup:   req.MenuGroup,
		ServiceType: req.ServiceType,
		ItemName:    req.ItemName,
		Amount:      decimal.NewFromFloat(req.Amount).Round(2),
		OrderDate:   date,
	}
	if req.MenuItemID != "" {
		id, err := uuid.Parse(req.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid menu_item_id: %w", err)
		}
		order.MenuItemID = &id
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ExportOrders renders the filtered order list, newest first.
func (s *OrderService) ExportOrders(ctx context.Context, filter models.OrderFilter, format export.Format) (*export.File, error) {
	rows, err := s.orderRepo.FetchOrders(ctx, filter.UserID, filter.Range)
	if err != nil {
		return nil, err
	}
	rows = analytics.FilterRows(rows, analytics.Filters{MenuGroup: filter.MenuGroup})

	return s.exporter.Render(export.OrdersTable(rows, filter.Range, s.now()), format)
}

// ExportTopItems renders the revenue ranking of items inside the filter.
func (s *OrderService) ExportTopItems(ctx context.Context, filter models.OrderFilter, limit int, format export.Format) (*export.File, error) {
	rows, err := s.orderRepo.FetchOrders(ctx, filter.UserID, filter.Range)
	if err != nil {
		return nil, err
	}
	rows = analytics.FilterRows(rows, analytics.Filters{MenuGroup: filter.MenuGroup})

	table := export.BreakdownTable("En çok satan ürünler", "Ürün", analytics.TopItems(rows, limit), filter.Range, s.now())
	return s.exporter.Render(table, format)
}
