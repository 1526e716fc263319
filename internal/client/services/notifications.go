package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/store"
)

type NotificationService interface {
	Fetch(ctx context.Context) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type notificationService struct {
	api   NotificationAPI
	store *store.Store
}

func NewNotificationService(api NotificationAPI, st *store.Store) NotificationService {
	return &notificationService{api: api, store: st}
}

func (s *notificationService) Fetch(ctx context.Context) error {
	if !s.store.State().Auth.IsAuthenticated {
		return ErrNotSignedIn
	}

	s.store.Start(store.SliceNotifications, store.OpFetchNotifications)
	items, err := s.api.MyNotifications(ctx)
	if err != nil {
		return fail(s.store, store.SliceNotifications, store.OpFetchNotifications, fmt.Errorf("fetch notifications: %w", err))
	}
	s.store.ReceiveNotifications(items)
	return nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	s.store.Start(store.SliceNotifications, store.OpMarkRead)
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		return fail(s.store, store.SliceNotifications, store.OpMarkRead, fmt.Errorf("mark read: %w", err))
	}
	s.store.MarkRead(id)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	s.store.Start(store.SliceNotifications, store.OpMarkAllRead)
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		return fail(s.store, store.SliceNotifications, store.OpMarkAllRead, fmt.Errorf("mark all read: %w", err))
	}
	s.store.MarkAllRead()
	return nil
}
