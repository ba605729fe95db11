package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest is a single position in a new order. The price is
// never taken from the client; it is snapshotted from the menu.
type OrderItemRequest struct {
	MenuItemID int64 `json:"menu_item_id" validate:"required" example:"3"`
	Quantity   int   `json:"quantity" validate:"required,min=1" example:"2"`
}

// CreateOrderRequest represents the request to open an order
type CreateOrderRequest struct {
	UserID int64              `json:"user_id" validate:"required" example:"1"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest represents a partial order update.
// Status is the only mutable field.
type UpdateOrderRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress done cancelled" example:"done"`
}

// OrderItemResponse represents an order position
type OrderItemResponse struct {
	ID           int64           `json:"id" example:"10"`
	MenuItemID   int64           `json:"menu_item_id" example:"3"`
	Quantity     int             `json:"quantity" example:"2"`
	Price        decimal.Decimal `json:"price" example:"3.50" swaggertype:"number"`
	MenuItemName string          `json:"menu_item_name,omitempty" example:"cappuccino"`
}

// OrderResponse represents an order with its positions
type OrderResponse struct {
	ID        int64               `json:"id" example:"7"`
	UserID    int64               `json:"user_id" example:"1"`
	Status    string              `json:"status" example:"open"`
	CreatedAt time.Time           `json:"created_at" example:"2026-08-29T10:15:00Z"`
	ClosedAt  *time.Time          `json:"closed_at,omitempty"`
	Items     []OrderItemResponse `json:"items"`
}

// ListOrdersResponse represents the order listing
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total" example:"25"`
}

// SummaryGroup is one bucket of the grouped order summary
type SummaryGroup struct {
	Group        string          `json:"group" example:"done"`
	CountOrders  int64           `json:"count_orders" example:"12"`
	TotalRevenue decimal.Decimal `json:"total_revenue" example:"84.00" swaggertype:"number"`
	AverageCheck decimal.Decimal `json:"average_check" example:"7.00" swaggertype:"number"`
}

// SummaryResponse represents aggregate order statistics. Results is set
// only for grouped queries; the top-level totals only for ungrouped ones.
type SummaryResponse struct {
	GroupBy      string          `json:"group_by,omitempty" example:"status"`
	Results      []SummaryGroup  `json:"results,omitempty"`
	CountOrders  int64           `json:"count_orders,omitempty" example:"25"`
	TotalRevenue decimal.Decimal `json:"total_revenue,omitempty" example:"175.50" swaggertype:"number"`
	AverageCheck decimal.Decimal `json:"average_check,omitempty" example:"7.02" swaggertype:"number"`
	Status       string          `json:"status,omitempty" example:"all"`
	UserID       *int64          `json:"user_id,omitempty"`
	DateFrom     *time.Time      `json:"date_from,omitempty"`
	DateTo       *time.Time      `json:"date_to,omitempty"`
}
