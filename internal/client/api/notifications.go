package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func (c *HTTPClient) MyNotifications(ctx context.Context) ([]models.Notification, error) {
	return getList[models.Notification](ctx, c, "/notifications/my-notifications", nil)
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/notifications/"+escape(id)+"/read", nil, nil, nil)
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPatch, "/notifications/mark-all-read", nil, nil, nil)
}
