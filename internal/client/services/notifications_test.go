package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/store"
)

type fakeNotificationAPI struct {
	items    []models.Notification
	err      error
	lastRead string
	allRead  bool
}

func (f *fakeNotificationAPI) MyNotifications(context.Context) ([]models.Notification, error) {
	return f.items, f.err
}

func (f *fakeNotificationAPI) MarkNotificationRead(_ context.Context, id string) error {
	f.lastRead = id
	return f.err
}

func (f *fakeNotificationAPI) MarkAllNotificationsRead(context.Context) error {
	f.allRead = true
	return f.err
}

func TestNotifications_Flow(t *testing.T) {
	st := signedIn(t)
	fake := &fakeNotificationAPI{items: []models.Notification{{ID: "n1"}, {ID: "n2"}, {ID: "n3", IsRead: true}}}
	svc := NewNotificationService(fake, st)

	require.NoError(t, svc.Fetch(testCtx()))
	assert.Equal(t, 2, st.State().Notifications.UnreadCount)

	require.NoError(t, svc.MarkRead(testCtx(), "n1"))
	require.NoError(t, svc.MarkRead(testCtx(), "n1"))
	assert.Equal(t, "n1", fake.lastRead)
	assert.Equal(t, 1, st.State().Notifications.UnreadCount)

	require.NoError(t, svc.MarkAllRead(testCtx()))
	assert.True(t, fake.allRead)
	assert.Zero(t, st.State().Notifications.UnreadCount)
}

func TestNotifications_MarkReadFailureKeepsCount(t *testing.T) {
	st := signedIn(t)
	st.ReceiveNotifications([]models.Notification{{ID: "n1"}})
	svc := NewNotificationService(&fakeNotificationAPI{err: errors.New("boom")}, st)

	require.Error(t, svc.MarkRead(testCtx(), "n1"))
	s := st.State()
	assert.Equal(t, 1, s.Notifications.UnreadCount)
	assert.Equal(t, store.StatusFailed, s.Notifications.Requests.Get(store.OpMarkRead).Status)
}

func TestNotifications_SignedOut(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationAPI{}, store.New())
	require.ErrorIs(t, svc.Fetch(testCtx()), ErrNotSignedIn)
}
