package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, in models.LoginInput) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out)
	return out, err
}

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterInput) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, in, &out)
	return out, err
}

func (c *HTTPClient) Profile(ctx context.Context) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &out)
	return out, err
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, in models.ProfileUpdate) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPatch, "/users/profile", nil, in, &out)
	return out, err
}
