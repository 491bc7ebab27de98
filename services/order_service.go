package services

import (
	"errors"
	"time"

	"restman/entity"
	"restman/pkg/apperr"
	"restman/repository"

	"gorm.io/gorm"
)

// OrderService owns the order aggregate: the cart-like Order with its
// quantity-merged menu lines and standalone recipe lines. Every mutation
// validates all referenced entities before touching the aggregate, then
// persists inside one transaction.
type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	MenuRepo   *repository.MenuRepository
	RecipeRepo *repository.RecipeRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	recipeRepo *repository.RecipeRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, RecipeRepo: recipeRepo}
}

// ----- Read projections -----

type OrderLineView struct {
	MenuID   uint     `json:"menuId"`
	MenuName *string  `json:"menuName,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity int      `json:"quantity"`
}

type SingleLineView struct {
	RecipeID   uint    `json:"recipeId"`
	RecipeName *string `json:"recipeName,omitempty"`
	Quantity   int     `json:"quantity"`
}

type OrderView struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"userId"`
	OrderDate   time.Time        `json:"orderDate"`
	TotalPrice  float64          `json:"totalPrice"`
	Items       []OrderLineView  `json:"items"`
	SingleItems []SingleLineView `json:"singleItems"`
}

// projectOrder joins the aggregate with its referenced menus/recipes.
// A dangling reference keeps the line but leaves the joined fields absent.
// The total sums each line's menu price once per line, not multiplied by
// quantity, and never counts single items; this reproduces the historical
// behavior on purpose (see DESIGN.md).
func projectOrder(o *entity.Order) *OrderView {
	view := &OrderView{
		ID:          o.ID,
		UserID:      o.UserID,
		OrderDate:   o.OrderDate,
		Items:       make([]OrderLineView, 0, len(o.Items)),
		SingleItems: make([]SingleLineView, 0, len(o.SingleItems)),
	}
	for _, it := range o.Items {
		line := OrderLineView{MenuID: it.MenuID, Quantity: it.Quantity}
		if it.Menu.ID != 0 {
			name, price := it.Menu.Name, it.Menu.Price
			line.MenuName = &name
			line.Price = &price
			view.TotalPrice += price
		}
		view.Items = append(view.Items, line)
	}
	for _, it := range o.SingleItems {
		line := SingleLineView{RecipeID: it.RecipeID, Quantity: it.Quantity}
		if it.Recipe.ID != 0 {
			name := it.Recipe.Name
			line.RecipeName = &name
		}
		view.SingleItems = append(view.SingleItems, line)
	}
	return view
}

// ----- CRUD -----

// Create starts an empty order for the user, dated now.
func (s *OrderService) Create(userID uint) (*entity.Order, error) {
	if userID == 0 {
		return nil, apperr.InvalidArgument("user is required")
	}
	order := &entity.Order{UserID: userID, OrderDate: time.Now()}
	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns the joined projection. ownerID scopes the lookup: a nonzero
// ownerID must match the order's user, and a mismatch reads as not found
// so foreign order ids are not confirmed to exist.
func (s *OrderService) Get(id, ownerID uint) (*OrderView, error) {
	order, err := s.Repo.FindByIDJoined(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order")
	}
	if err != nil {
		return nil, err
	}
	if ownerID != 0 && order.UserID != ownerID {
		return nil, apperr.NotFound("order")
	}
	return projectOrder(order), nil
}

// ListForUser returns the user's orders only; the filter is never optional.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	if userID == 0 {
		return nil, apperr.InvalidArgument("user is required")
	}
	return s.Repo.FindByUser(userID)
}

// UpdateDate patches the order header.
func (s *OrderService) UpdateDate(id, ownerID uint, orderDate time.Time) error {
	order, err := s.resolveOwned(id, ownerID)
	if err != nil {
		return err
	}
	order.OrderDate = orderDate
	return s.Repo.Update(order)
}

// Delete removes the order and cascades to its owned lines.
func (s *OrderService) Delete(id, ownerID uint) error {
	if _, err := s.resolveOwned(id, ownerID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
}

// ----- Composition -----

// AddMenuItem puts one unit of a menu on the order. An existing line for
// the menu is merged by bumping its quantity; otherwise a new line starts
// at quantity 1.
func (s *OrderService) AddMenuItem(orderID, menuID, ownerID uint) error {
	if _, err := s.resolveOwned(orderID, ownerID); err != nil {
		return err
	}
	ok, err := s.MenuRepo.Exists(menuID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("menu")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpsertItem(tx, orderID, menuID)
	})
}

// RemoveMenuItem removes the whole line for the menu, whatever its
// quantity. A missing line is reported distinctly from a missing order.
func (s *OrderService) RemoveMenuItem(orderID, menuID, ownerID uint) error {
	if _, err := s.resolveOwned(orderID, ownerID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := s.Repo.RemoveItem(tx, orderID, menuID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("item")
		}
		return err
	})
}

// AddSingleItem: the standalone-recipe twin of AddMenuItem, merged by
// (order, recipe).
func (s *OrderService) AddSingleItem(orderID, recipeID, ownerID uint) error {
	if _, err := s.resolveOwned(orderID, ownerID); err != nil {
		return err
	}
	ok, err := s.RecipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("recipe")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpsertSingleItem(tx, orderID, recipeID)
	})
}

func (s *OrderService) RemoveSingleItem(orderID, recipeID, ownerID uint) error {
	if _, err := s.resolveOwned(orderID, ownerID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := s.Repo.RemoveSingleItem(tx, orderID, recipeID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("item")
		}
		return err
	})
}

func (s *OrderService) resolveOwned(id, ownerID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order")
	}
	if err != nil {
		return nil, err
	}
	if ownerID != 0 && order.UserID != ownerID {
		return nil, apperr.NotFound("order")
	}
	return order, nil
}
