package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderDate time.Time `json:"orderDate"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when user detail is needed

	Items       []OrderItem       `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SingleItems []OrderSingleItem `json:"singleItems" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
