package services

import (
	"errors"

	"restman/entity"
	"restman/pkg/apperr"
	"restman/repository"

	"gorm.io/gorm"
)

type IngredientService struct {
	Repo *repository.IngredientRepository
}

func NewIngredientService(repo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{Repo: repo}
}

func (s *IngredientService) List() ([]entity.Ingredient, error) {
	return s.Repo.List()
}

func (s *IngredientService) Get(id uint) (*entity.Ingredient, error) {
	ing, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("ingredient")
	}
	return ing, err
}

func (s *IngredientService) Create(name string) (*entity.Ingredient, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("name is required")
	}
	ing := &entity.Ingredient{Name: name}
	if err := s.Repo.Create(ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *IngredientService) Update(id uint, name string) (*entity.Ingredient, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("name is required")
	}
	ing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	ing.Name = name
	if err := s.Repo.Update(ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *IngredientService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
