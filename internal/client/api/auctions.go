package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (c *HTTPClient) ListAuctions(ctx context.Context, f models.AuctionFilter) ([]models.Auction, error) {
	return getList[models.Auction](ctx, c, "/auctions", f.Values())
}

func (c *HTTPClient) LiveAuctions(ctx context.Context) ([]models.Auction, error) {
	return getList[models.Auction](ctx, c, "/auctions/live", nil)
}

func (c *HTTPClient) UpcomingAuctions(ctx context.Context) ([]models.Auction, error) {
	return getList[models.Auction](ctx, c, "/auctions/upcoming", nil)
}

func (c *HTTPClient) MyAuctions(ctx context.Context) ([]models.Auction, error) {
	return getList[models.Auction](ctx, c, "/auctions/my-auctions", nil)
}

func (c *HTTPClient) GetAuction(ctx context.Context, id string) (models.Auction, error) {
	var out models.Auction
	err := c.do(ctx, http.MethodGet, "/auctions/"+escape(id), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateAuction(ctx context.Context, in models.AuctionInput) (models.Auction, error) {
	var out models.Auction
	err := c.do(ctx, http.MethodPost, "/auctions", nil, in, &out)
	return out, err
}
