package services

import (
	"errors"

	"restman/entity"
	"restman/pkg/apperr"
	"restman/repository"

	"gorm.io/gorm"
)

type RecipeService struct {
	DB           *gorm.DB
	Repo         *repository.RecipeRepository
	DishTypeRepo *repository.DishTypeRepository
	IngRepo      *repository.IngredientRepository
}

func NewRecipeService(
	db *gorm.DB,
	repo *repository.RecipeRepository,
	dtRepo *repository.DishTypeRepository,
	ingRepo *repository.IngredientRepository,
) *RecipeService {
	return &RecipeService{DB: db, Repo: repo, DishTypeRepo: dtRepo, IngRepo: ingRepo}
}

// ----- DTOs from Controller -----

type RecipeIn struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	PortionSize string  `json:"portionSize"`
	DishTypeID  uint    `json:"dishTypeId" binding:"required"`
}

// IngredientWeight is the recipe projection line: which ingredient, how much.
type IngredientWeight struct {
	IngredientID uint    `json:"ingredientId"`
	Weight       float64 `json:"weight"`
}

func (s *RecipeService) List() ([]entity.Recipe, error) {
	return s.Repo.List()
}

func (s *RecipeService) Get(id uint) (*entity.Recipe, error) {
	recipe, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("recipe")
	}
	return recipe, err
}

func (s *RecipeService) Create(in *RecipeIn) (*entity.Recipe, error) {
	if in == nil {
		return nil, apperr.InvalidArgument("recipe payload is required")
	}
	ok, err := s.DishTypeRepo.Exists(in.DishTypeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("dish type")
	}

	recipe := &entity.Recipe{
		Name:        in.Name,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		PortionSize: in.PortionSize,
		DishTypeID:  in.DishTypeID,
	}
	if err := s.Repo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) Update(id uint, in *RecipeIn) (*entity.Recipe, error) {
	if in == nil {
		return nil, apperr.InvalidArgument("recipe payload is required")
	}
	recipe, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	ok, err := s.DishTypeRepo.Exists(in.DishTypeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("dish type")
	}

	recipe.Name = in.Name
	recipe.Price = in.Price
	recipe.ImageURL = in.ImageURL
	recipe.PortionSize = in.PortionSize
	recipe.DishTypeID = in.DishTypeID
	if err := s.Repo.Update(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
}

// AddIngredient links an ingredient with a weight. Both sides are checked
// before anything is written; duplicate pairs each get their own row.
func (s *RecipeService) AddIngredient(recipeID, ingredientID uint, weight float64) error {
	ok, err := s.Repo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("recipe")
	}
	ok, err = s.IngRepo.Exists(ingredientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("ingredient")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AddIngredient(tx, &entity.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredientID,
			Weight:       weight,
		})
	})
}

// RemoveIngredient deletes the single row for the exact pair.
func (s *RecipeService) RemoveIngredient(recipeID, ingredientID uint) error {
	ok, err := s.Repo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("recipe")
	}
	ok, err = s.IngRepo.Exists(ingredientID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("ingredient")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := s.Repo.RemoveIngredient(tx, recipeID, ingredientID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("item")
		}
		return err
	})
}

// Ingredients projects the (ingredientId, weight) pairs of a recipe,
// recomputed from the current rows on every call.
func (s *RecipeService) Ingredients(recipeID uint) ([]IngredientWeight, error) {
	recipe, err := s.Get(recipeID)
	if err != nil {
		return nil, err
	}
	pairs := make([]IngredientWeight, 0, len(recipe.Ingredients))
	for _, row := range recipe.Ingredients {
		pairs = append(pairs, IngredientWeight{IngredientID: row.IngredientID, Weight: row.Weight})
	}
	return pairs, nil
}
