package entity

import (
	"gorm.io/gorm"
)

// Weighted join row between Recipe and Ingredient. Duplicate
// (recipe, ingredient) pairs are allowed; each add appends a row.
type RecipeIngredient struct {
	gorm.Model
	RecipeID uint   `json:"recipeId"`
	Recipe   Recipe `json:"-"`

	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"-"`

	Weight float64 `json:"weight"`
}
