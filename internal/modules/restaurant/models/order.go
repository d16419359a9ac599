package models

import (
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is one sold line item, denormalized with its menu group and item name
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string          `gorm:"type:text;not null;index:idx_orders_user_date,priority:1" json:"user_id"`
	MenuItemID  *uuid.UUID      `gorm:"type:uuid" json:"menu_item_id,omitempty"`
	MenuGroup   string          `gorm:"type:text;not null" json:"menu_group"`
	ServiceType string          `gorm:"type:text;not null" json:"service_type"`
	ItemName    string          `gorm:"type:text;not null" json:"item_name"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	OrderDate   Date            `gorm:"type:date;not null;index:idx_orders_user_date,priority:2" json:"order_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate sets UUID before creating
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Record converts the row into the read-only shape the analytics package works on.
func (o *Order) Record() analytics.OrderRecord {
	return analytics.OrderRecord{
		UserID:      o.UserID,
		Amount:      o.Amount,
		MenuGroup:   o.MenuGroup,
		ServiceType: o.ServiceType,
		ItemName:    o.ItemName,
		OrderDate:   string(o.OrderDate),
	}
}

// Records converts a slice of rows, preserving order.
func Records(orders []Order) []analytics.OrderRecord {
	out := make([]analytics.OrderRecord, len(orders))
	for i := range orders {
		out[i] = orders[i].Record()
	}
	return out
}

// CreateOrderRequest represents order entry from the dashboard form
type CreateOrderRequest struct {
	UserID      string  `json:"user_id"`
	MenuItemID  string  `json:"menu_item_id,omitempty"`
	MenuGroup   string  `json:"menu_group"`
	ServiceType string  `json:"service_type"`
	ItemName    string  `json:"item_name"`
	Amount      float64 `json:"amount"`
	OrderDate   string  `json:"order_date,omitempty"` // defaults to today
}

// OrderFilter represents dashboard filtering options
type OrderFilter struct {
	UserID    string
	Range     analytics.DateRange
	MenuGroup string
	Limit     int
}

// DateWindow is the first and last order day on record.
type DateWindow struct {
	FirstDate Date `json:"first_date"`
	LastDate  Date `json:"last_date"`
}
