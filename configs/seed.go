package configs

import (
	"log"

	"restman/entity"

	"golang.org/x/crypto/bcrypt"
)

// First admin account, taken from env on startup.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Default dish-type lookups.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.DishType{}, entity.DishType{Name: "Starter"})
	db.FirstOrCreate(&entity.DishType{}, entity.DishType{Name: "Main Dish"})
	db.FirstOrCreate(&entity.DishType{}, entity.DishType{Name: "Dessert"})
	db.FirstOrCreate(&entity.DishType{}, entity.DishType{Name: "Drink"})

	return nil
}
