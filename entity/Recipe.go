package entity

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	PortionSize string  `json:"portionSize"`

	DishTypeID uint     `json:"dishTypeId"`
	DishType   DishType `json:"-"` // preload only for detail views

	Ingredients []RecipeIngredient `json:"ingredients" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	MenuItems   []MenuItem         `json:"-"`
}
