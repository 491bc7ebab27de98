package repository

import (
	"restman/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Preload("Items").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.Preload("Items").First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Menu{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Update(menu *entity.Menu) error {
	return r.DB.Save(menu).Error
}

func (r *MenuRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("menu_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Menu{}, id).Error
}

// AddItem appends a link row. Re-adding the same recipe is not deduplicated;
// the menu ends up with two rows for it.
func (r *MenuRepository) AddItem(tx *gorm.DB, menuID, recipeID uint) error {
	return tx.Create(&entity.MenuItem{MenuID: menuID, RecipeID: recipeID}).Error
}

// RemoveItem deletes the first link row for the recipe.
func (r *MenuRepository) RemoveItem(tx *gorm.DB, menuID, recipeID uint) error {
	var row entity.MenuItem
	err := tx.Where("menu_id = ? AND recipe_id = ?", menuID, recipeID).
		Order("id").
		First(&row).Error
	if err != nil {
		return err
	}
	return tx.Delete(&row).Error
}
