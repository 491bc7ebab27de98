package services

import (
	"errors"

	"restman/entity"
	"restman/pkg/apperr"
	"restman/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB         *gorm.DB
	Repo       *repository.MenuRepository
	RecipeRepo *repository.RecipeRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, recipeRepo *repository.RecipeRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo, RecipeRepo: recipeRepo}
}

// ----- DTOs from Controller -----

type MenuIn struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// MenuView is the read projection: the menu header plus the linked recipe
// ids derived from its items. Duplicates are preserved.
type MenuView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	RecipeIDs []uint  `json:"recipeIds"`
}

func (s *MenuService) List() ([]entity.Menu, error) {
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	menu, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("menu")
	}
	return menu, err
}

func (s *MenuService) Create(in *MenuIn) (*entity.Menu, error) {
	if in == nil {
		return nil, apperr.InvalidArgument("menu payload is required")
	}
	menu := &entity.Menu{Name: in.Name, Price: in.Price, ImageURL: in.ImageURL}
	if err := s.Repo.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Update(id uint, in *MenuIn) (*entity.Menu, error) {
	if in == nil {
		return nil, apperr.InvalidArgument("menu payload is required")
	}
	menu, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	menu.Name = in.Name
	menu.Price = in.Price
	menu.ImageURL = in.ImageURL
	if err := s.Repo.Update(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
}

// AddRecipe links a recipe to the menu. Unlike order lines this does NOT
// merge: calling it twice leaves two rows for the same recipe.
func (s *MenuService) AddRecipe(menuID, recipeID uint) error {
	ok, err := s.Repo.Exists(menuID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("menu")
	}
	ok, err = s.RecipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("recipe")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AddItem(tx, menuID, recipeID)
	})
}

// RemoveRecipe unlinks the first matching item row.
func (s *MenuService) RemoveRecipe(menuID, recipeID uint) error {
	ok, err := s.Repo.Exists(menuID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("menu")
	}
	ok, err = s.RecipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("recipe")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := s.Repo.RemoveItem(tx, menuID, recipeID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("item")
		}
		return err
	})
}

// View projects the menu's recipe-id list from its current item rows.
func (s *MenuService) View(menuID uint) (*MenuView, error) {
	menu, err := s.Get(menuID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(menu.Items))
	for _, it := range menu.Items {
		ids = append(ids, it.RecipeID)
	}
	return &MenuView{
		ID:        menu.ID,
		Name:      menu.Name,
		Price:     menu.Price,
		ImageURL:  menu.ImageURL,
		RecipeIDs: ids,
	}, nil
}
