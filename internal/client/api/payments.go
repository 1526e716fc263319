package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (c *HTTPClient) CreatePayment(ctx context.Context, in models.PaymentInput) (models.Payment, error) {
	var out models.Payment
	err := c.do(ctx, http.MethodPost, "/payments", nil, in, &out)
	return out, err
}

func (c *HTTPClient) MyPayments(ctx context.Context) ([]models.Payment, error) {
	return getList[models.Payment](ctx, c, "/payments/my-payments", nil)
}

func (c *HTTPClient) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	var out models.Payment
	err := c.do(ctx, http.MethodGet, "/payments/"+escape(id), nil, nil, &out)
	return out, err
}
