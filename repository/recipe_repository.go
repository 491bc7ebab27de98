package repository

import (
	"restman/entity"

	"gorm.io/gorm"
)

type RecipeRepository struct{ DB *gorm.DB }

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

func (r *RecipeRepository) List() ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	err := r.DB.Preload("Ingredients").Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) FindByID(id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.DB.Preload("Ingredients").First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Recipe{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RecipeRepository) Create(recipe *entity.Recipe) error {
	return r.DB.Create(recipe).Error
}

func (r *RecipeRepository) Update(recipe *entity.Recipe) error {
	return r.DB.Save(recipe).Error
}

func (r *RecipeRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("recipe_id = ?", id).Delete(&entity.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Recipe{}, id).Error
}

// AddIngredient appends a weighted join row. No merge on duplicate
// (recipe, ingredient) pairs; every call creates a new row.
func (r *RecipeRepository) AddIngredient(tx *gorm.DB, row *entity.RecipeIngredient) error {
	return tx.Create(row).Error
}

// RemoveIngredient deletes the first row matching the exact pair.
func (r *RecipeRepository) RemoveIngredient(tx *gorm.DB, recipeID, ingredientID uint) error {
	var row entity.RecipeIngredient
	err := tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Order("id").
		First(&row).Error
	if err != nil {
		return err
	}
	return tx.Delete(&row).Error
}
