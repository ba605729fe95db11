package models

import "github.com/shopspring/decimal"

type OrderItem struct {
	ID         int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID    int64 `gorm:"column:order_id;not null;index" json:"order_id"`
	MenuItemID int64 `gorm:"column:menu_item_id;not null" json:"menu_item_id"`
	Quantity   int   `gorm:"column:quantity;not null;default:1" json:"quantity"`
	// Price is the menu item price captured at order time. Later menu price
	// changes must not affect existing orders.
	Price decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
