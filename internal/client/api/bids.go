package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (c *HTTPClient) CreateBid(ctx context.Context, in models.BidInput) (models.Bid, error) {
	var out models.Bid
	err := c.do(ctx, http.MethodPost, "/bids", nil, in, &out)
	return out, err
}

func (c *HTTPClient) AuctionBids(ctx context.Context, auctionID string) ([]models.Bid, error) {
	return getList[models.Bid](ctx, c, "/bids/auction/"+escape(auctionID), nil)
}

func (c *HTTPClient) MyBids(ctx context.Context) ([]models.Bid, error) {
	return getList[models.Bid](ctx, c, "/bids/my-bids", nil)
}

// HighestBid returns nil when the auction has no bids yet.
func (c *HTTPClient) HighestBid(ctx context.Context, auctionID string) (*models.Bid, error) {
	path := "/bids/highest/" + escape(auctionID)
	body, err := c.send(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	var out models.Bid
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrapf(err, "GET %s: decoding response body: %s", path, truncate(body))
	}
	return &out, nil
}
