package entity

import (
	"gorm.io/gorm"
)

// One row per (menu, recipe) occurrence. Adding the same recipe to a
// menu twice creates two rows; there is no quantity at this level.
type MenuItem struct {
	gorm.Model
	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	RecipeID uint   `json:"recipeId"`
	Recipe   Recipe `json:"-"`
}
