package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// 事件路由键
const (
	RoutingStockAdjusted = "inventory.stock_adjusted"
	RoutingLowStock      = "inventory.low_stock"
)

// StockEvent 库存变动事件,提交后发布
type StockEvent struct {
	EventID       uuid.UUID    `json:"eventId"`
	Catalog       string       `json:"catalog"`
	StoreID       string       `json:"storeId,omitempty"`
	ItemID        uuid.UUID    `json:"itemId"`
	Title         string       `json:"title"`
	Type          MutationType `json:"type"`
	Quantity      int          `json:"quantity"`
	PreviousStock int          `json:"previousStock"`
	NewStock      int          `json:"newStock"`
	Threshold     int          `json:"lowStockThreshold"`
	Reason        string       `json:"reason"`
	OccurredAt    time.Time    `json:"occurredAt"`
}

// Publisher 事件发布接口(实现见infrastructure/messaging)
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event *StockEvent) error
}

// NopPublisher 不发布任何事件
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, *StockEvent) error { return nil }
