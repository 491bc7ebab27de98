package entity

import (
	"gorm.io/gorm"
)

// Menu line of an order, unique per (order, menu). Re-adding the same
// menu increments Quantity instead of creating another row.
type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"` // preload for projections
}
