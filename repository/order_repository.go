package repository

import (
	"errors"

	"restman/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("SingleItems").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByIDJoined resolves each line's referenced menu/recipe for projection.
// A dangling reference leaves the association zero-valued; callers treat
// Menu.ID == 0 / Recipe.ID == 0 as absent.
func (r *OrderRepository) FindByIDJoined(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("Items.Menu").
		Preload("SingleItems").Preload("SingleItems.Recipe").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByUser returns only the given user's orders; the filter is mandatory.
func (r *OrderRepository) FindByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("SingleItems").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Update(o *entity.Order) error {
	return r.DB.Save(o).Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", id).Delete(&entity.OrderSingleItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, id).Error
}

// UpsertItem merges by (order, menu): an existing line gets its quantity
// bumped, otherwise a new line starts at quantity 1.
func (r *OrderRepository) UpsertItem(tx *gorm.DB, orderID, menuID uint) error {
	var exist entity.OrderItem
	err := tx.Where("order_id = ? AND menu_id = ?", orderID, menuID).First(&exist).Error
	if err == nil {
		exist.Quantity++
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.OrderItem{OrderID: orderID, MenuID: menuID, Quantity: 1}).Error
}

// RemoveItem deletes the whole line regardless of quantity.
func (r *OrderRepository) RemoveItem(tx *gorm.DB, orderID, menuID uint) error {
	var row entity.OrderItem
	err := tx.Where("order_id = ? AND menu_id = ?", orderID, menuID).First(&row).Error
	if err != nil {
		return err
	}
	return tx.Delete(&row).Error
}

// UpsertSingleItem: same merge rule keyed on (order, recipe).
func (r *OrderRepository) UpsertSingleItem(tx *gorm.DB, orderID, recipeID uint) error {
	var exist entity.OrderSingleItem
	err := tx.Where("order_id = ? AND recipe_id = ?", orderID, recipeID).First(&exist).Error
	if err == nil {
		exist.Quantity++
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.OrderSingleItem{OrderID: orderID, RecipeID: recipeID, Quantity: 1}).Error
}

func (r *OrderRepository) RemoveSingleItem(tx *gorm.DB, orderID, recipeID uint) error {
	var row entity.OrderSingleItem
	err := tx.Where("order_id = ? AND recipe_id = ?", orderID, recipeID).First(&row).Error
	if err != nil {
		return err
	}
	return tx.Delete(&row).Error
}
