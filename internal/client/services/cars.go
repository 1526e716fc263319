package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/validate"
)

// CarService has no store slice; cars are shown straight from the response.
type CarService interface {
	List(ctx context.Context, f models.CarFilter) ([]models.Car, error)
	Approved(ctx context.Context) ([]models.Car, error)
	Mine(ctx context.Context) ([]models.Car, error)
	Get(ctx context.Context, id string) (models.Car, error)
	Create(ctx context.Context, in models.CarInput) (models.Car, error)
	Update(ctx context.Context, id string, in models.CarInput) (models.Car, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]models.Category, error)
}

type carService struct {
	api CarAPI
}

func NewCarService(api CarAPI) CarService {
	return &carService{api: api}
}

func (s *carService) List(ctx context.Context, f models.CarFilter) ([]models.Car, error) {
	cars, err := s.api.ListCars(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return cars, nil
}

func (s *carService) Approved(ctx context.Context) ([]models.Car, error) {
	cars, err := s.api.ApprovedCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approved cars: %w", err)
	}
	return cars, nil
}

func (s *carService) Mine(ctx context.Context) ([]models.Car, error) {
	cars, err := s.api.MyCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list my cars: %w", err)
	}
	return cars, nil
}

func (s *carService) Get(ctx context.Context, id string) (models.Car, error) {
	c, err := s.api.GetCar(ctx, id)
	if err != nil {
		return models.Car{}, fmt.Errorf("get car %s: %w", id, err)
	}
	return c, nil
}

func (s *carService) Create(ctx context.Context, in models.CarInput) (models.Car, error) {
	if err := validate.Struct(in); err != nil {
		return models.Car{}, err
	}
	c, err := s.api.CreateCar(ctx, in)
	if err != nil {
		return models.Car{}, fmt.Errorf("create car: %w", err)
	}
	return c, nil
}

func (s *carService) Update(ctx context.Context, id string, in models.CarInput) (models.Car, error) {
	if err := validate.Struct(in); err != nil {
		return models.Car{}, err
	}
	c, err := s.api.UpdateCar(ctx, id, in)
	if err != nil {
		return models.Car{}, fmt.Errorf("update car %s: %w", id, err)
	}
	return c, nil
}

func (s *carService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCar(ctx, id); err != nil {
		return fmt.Errorf("delete car %s: %w", id, err)
	}
	return nil
}

func (s *carService) Categories(ctx context.Context) ([]models.Category, error) {
	list, err := s.api.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}
