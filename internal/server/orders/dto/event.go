package dto

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is published to Redis on order creation and status changes
// for downstream consumers (kitchen displays, notification bots).
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
