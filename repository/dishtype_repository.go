package repository

import (
	"restman/entity"

	"gorm.io/gorm"
)

type DishTypeRepository struct{ DB *gorm.DB }

func NewDishTypeRepository(db *gorm.DB) *DishTypeRepository {
	return &DishTypeRepository{DB: db}
}

func (r *DishTypeRepository) List() ([]entity.DishType, error) {
	var types []entity.DishType
	err := r.DB.Find(&types).Error
	return types, err
}

func (r *DishTypeRepository) FindByID(id uint) (*entity.DishType, error) {
	var dt entity.DishType
	if err := r.DB.First(&dt, id).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

func (r *DishTypeRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.DishType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DishTypeRepository) Create(dt *entity.DishType) error {
	return r.DB.Create(dt).Error
}

func (r *DishTypeRepository) Update(dt *entity.DishType) error {
	return r.DB.Save(dt).Error
}

func (r *DishTypeRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.DishType{}, id).Error
}

// Recipes still pointing at this dish type; deletion is refused while any exist.
func (r *DishTypeRepository) CountRecipes(id uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Recipe{}).Where("dish_type_id = ?", id).Count(&count).Error
	return count, err
}
