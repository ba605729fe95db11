package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string          `gorm:"column:name;size:128;not null" json:"name"`
	Category    string          `gorm:"column:category;size:64" json:"category,omitempty"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	IsAvailable bool            `gorm:"column:is_available;not null;default:false" json:"is_available"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	OrderItems []OrderItem `gorm:"foreignKey:MenuItemID" json:"-"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
