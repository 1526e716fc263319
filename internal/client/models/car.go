package models

import (
	"net/url"
	"strconv"
	"time"
)

type Car struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Mileage       int       `json:"mileage"`
	BodyType      string    `json:"bodyType"`
	Condition     string    `json:"condition"`
	Color         string    `json:"color"`
	VIN           string    `json:"vin,omitempty"`
	StartingPrice float64   `json:"startingPrice"`
	Photos        []string  `json:"photos"`
	Status        string    `json:"status"`
	Owner         UserRef   `json:"owner"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CarInput is the body of POST /cars and PATCH /cars/{id}.
type CarInput struct {
	Title         string   `json:"title,omitempty"`
	Make          string   `json:"make" validate:"required"`
	Model         string   `json:"model" validate:"required"`
	Year          int      `json:"year" validate:"caryear"`
	Mileage       int      `json:"mileage" validate:"gte=0,lte=999999"`
	BodyType      string   `json:"bodyType,omitempty"`
	Condition     string   `json:"condition,omitempty"`
	Color         string   `json:"color,omitempty"`
	VIN           string   `json:"vin,omitempty" validate:"omitempty,vin"`
	Description   string   `json:"description,omitempty" validate:"max=500"`
	StartingPrice float64  `json:"startingPrice" validate:"gte=100,lte=10000000"`
	Photos        []string `json:"photos,omitempty"`
}

// CarFilter narrows GET /cars. Zero values are omitted.
type CarFilter struct {
	Status   string
	BodyType string
	MinPrice float64
	MaxPrice float64
	Search   string
}

func (f CarFilter) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.BodyType != "" {
		v.Set("bodyType", f.BodyType)
	}
	if f.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	return v
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
