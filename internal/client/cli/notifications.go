package cli

import (
	"context"
	"fmt"
)

func (a *App) Notifications(ctx context.Context) error {
	if err := a.notificationService.Fetch(ctx); err != nil {
		return err
	}
	renderNotifications(a.out, a.store.State().Notifications)
	return nil
}

func (a *App) Read(ctx context.Context, id string) error {
	if err := a.notificationService.MarkRead(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d unread\n", a.store.State().Notifications.UnreadCount)
	return nil
}

func (a *App) ReadAll(ctx context.Context) error {
	if err := a.notificationService.MarkAllRead(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All notifications marked as read.")
	return nil
}
