package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`

	Items      []MenuItem  `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	OrderItems []OrderItem `json:"-"`
}
