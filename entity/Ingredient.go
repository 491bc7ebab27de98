package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	RecipeIngredients []RecipeIngredient `json:"-"`
}
