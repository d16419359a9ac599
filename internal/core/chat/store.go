package chat

import (
	"context"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
)

// OrderStore is the read side the engine needs from persistence.
//
// FetchOrders returns at most analytics.MaxFetchRows rows for userID whose
// order_date lies inside r, comparing ISO date strings inclusively. Rows come
// newest first so the cap never hides the latest day.
// FetchFullContext builds the per-user aggregate profile.
type OrderStore interface {
	FetchOrders(ctx context.Context, userID string, r analytics.DateRange) ([]analytics.OrderRecord, error)
	FetchFullContext(ctx context.Context, userID string) (*analytics.FullContext, error)
}
