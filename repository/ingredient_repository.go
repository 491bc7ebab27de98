package repository

import (
	"restman/entity"

	"gorm.io/gorm"
)

type IngredientRepository struct{ DB *gorm.DB }

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

func (r *IngredientRepository) List() ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient
	err := r.DB.Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) FindByID(id uint) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := r.DB.First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *IngredientRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *IngredientRepository) Create(ing *entity.Ingredient) error {
	return r.DB.Create(ing).Error
}

func (r *IngredientRepository) Update(ing *entity.Ingredient) error {
	return r.DB.Save(ing).Error
}

func (r *IngredientRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Ingredient{}, id).Error
}
