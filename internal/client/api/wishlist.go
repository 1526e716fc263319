package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (c *HTTPClient) AddToWishlist(ctx context.Context, auctionID string) (models.WishlistItem, error) {
	var out models.WishlistItem
	body := map[string]string{"auctionId": auctionID}
	err := c.do(ctx, http.MethodPost, "/wishlist", nil, body, &out)
	return out, err
}

func (c *HTTPClient) RemoveFromWishlist(ctx context.Context, auctionID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/"+escape(auctionID), nil, nil, nil)
}

func (c *HTTPClient) MyWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	return getList[models.WishlistItem](ctx, c, "/wishlist/my-wishlist", nil)
}

func (c *HTTPClient) CheckWishlist(ctx context.Context, auctionID string) (bool, error) {
	var out struct {
		IsInWishlist bool `json:"isInWishlist"`
	}
	err := c.do(ctx, http.MethodGet, "/wishlist/check/"+escape(auctionID), nil, nil, &out)
	return out.IsInWishlist, err
}

func (c *HTTPClient) ClearWishlist(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/clear", nil, nil, nil)
}
