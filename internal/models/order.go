package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusOpen       OrderStatus = "open"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatuses holds the accepted status values.
var ValidOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusOpen:       {},
	OrderStatusInProgress: {},
	OrderStatusDone:       {},
	OrderStatusCancelled:  {},
}

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := ValidOrderStatuses[s]
	return ok
}

// IsTerminal reports whether s closes the order (done or cancelled).
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDone || s == OrderStatusCancelled
}

type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    int64       `gorm:"column:user_id;not null;index" json:"user_id"`
	Status    OrderStatus `gorm:"column:status;size:16;not null;default:open" json:"status"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ClosedAt  *time.Time  `gorm:"column:closed_at" json:"closed_at,omitempty"`

	User  *User       `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}
