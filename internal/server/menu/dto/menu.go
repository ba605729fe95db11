package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest represents the request to add a menu item
type CreateMenuItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=128" example:"cappuccino"`
	Category    string          `json:"category" validate:"omitempty,max=64" example:"coffee"`
	Price       decimal.Decimal `json:"price" validate:"required" example:"3.50" swaggertype:"number"`
	IsAvailable bool            `json:"is_available" example:"true"`
}

// UpdateMenuItemRequest represents a partial menu item update.
// Nil fields are left unchanged.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=128"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=64"`
	Price       *decimal.Decimal `json:"price,omitempty" swaggertype:"number"`
	IsAvailable *bool            `json:"is_available,omitempty"`
}

// MenuItemResponse represents a menu item returned by the API
type MenuItemResponse struct {
	ID          int64           `json:"id" example:"1"`
	Name        string          `json:"name" example:"cappuccino"`
	Category    string          `json:"category,omitempty" example:"coffee"`
	Price       decimal.Decimal `json:"price" example:"3.50" swaggertype:"number"`
	IsAvailable bool            `json:"is_available" example:"true"`
	CreatedAt   time.Time       `json:"created_at" example:"2026-08-01T09:00:00Z"`
}

// ListMenuResponse represents the menu listing
type ListMenuResponse struct {
	Items []MenuItemResponse `json:"items"`
	Total int                `json:"total" example:"12"`
}
