package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (c *HTTPClient) ListCars(ctx context.Context, f models.CarFilter) ([]models.Car, error) {
	return getList[models.Car](ctx, c, "/cars", f.Values())
}

func (c *HTTPClient) ApprovedCars(ctx context.Context) ([]models.Car, error) {
	return getList[models.Car](ctx, c, "/cars/approved", nil)
}

func (c *HTTPClient) MyCars(ctx context.Context) ([]models.Car, error) {
	return getList[models.Car](ctx, c, "/cars/my-cars", nil)
}

func (c *HTTPClient) GetCar(ctx context.Context, id string) (models.Car, error) {
	var out models.Car
	err := c.do(ctx, http.MethodGet, "/cars/"+escape(id), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateCar(ctx context.Context, in models.CarInput) (models.Car, error) {
	var out models.Car
	err := c.do(ctx, http.MethodPost, "/cars", nil, in, &out)
	return out, err
}

func (c *HTTPClient) UpdateCar(ctx context.Context, id string, in models.CarInput) (models.Car, error) {
	var out models.Car
	err := c.do(ctx, http.MethodPatch, "/cars/"+escape(id), nil, in, &out)
	return out, err
}

func (c *HTTPClient) DeleteCar(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cars/"+escape(id), nil, nil, nil)
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	return getList[models.Category](ctx, c, "/categories", nil)
}

func (c *HTTPClient) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	var out models.Category
	err := c.do(ctx, http.MethodPost, "/categories", nil, in, &out)
	return out, err
}
