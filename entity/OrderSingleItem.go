package entity

import (
	"gorm.io/gorm"
)

// Standalone recipe line of an order, unique per (order, recipe),
// quantity-merged the same way as OrderItem.
type OrderSingleItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	RecipeID uint   `json:"recipeId"`
	Recipe   Recipe `json:"-"` // preload for projections
}
