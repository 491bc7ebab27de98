package services

import (
	"errors"

	"restman/entity"
	"restman/pkg/apperr"
	"restman/repository"

	"gorm.io/gorm"
)

type DishTypeService struct {
	Repo *repository.DishTypeRepository
}

func NewDishTypeService(repo *repository.DishTypeRepository) *DishTypeService {
	return &DishTypeService{Repo: repo}
}

func (s *DishTypeService) List() ([]entity.DishType, error) {
	return s.Repo.List()
}

func (s *DishTypeService) Get(id uint) (*entity.DishType, error) {
	dt, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("dish type")
	}
	return dt, err
}

func (s *DishTypeService) Create(name string) (*entity.DishType, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("name is required")
	}
	dt := &entity.DishType{Name: name}
	if err := s.Repo.Create(dt); err != nil {
		return nil, err
	}
	return dt, nil
}

func (s *DishTypeService) Update(id uint, name string) (*entity.DishType, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("name is required")
	}
	dt, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	dt.Name = name
	if err := s.Repo.Update(dt); err != nil {
		return nil, err
	}
	return dt, nil
}

// Delete refuses to orphan recipes: a dish type still referenced by any
// recipe cannot be removed.
func (s *DishTypeService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.Repo.CountRecipes(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("dish type is referenced by recipes")
	}
	return s.Repo.Delete(id)
}
