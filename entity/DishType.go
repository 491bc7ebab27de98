package entity

import (
	"gorm.io/gorm"
)

type DishType struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	Recipes []Recipe `json:"-"` // preload only when needed
}
