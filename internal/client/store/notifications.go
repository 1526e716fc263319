package store

import "github.com/dmitrijs2005/carbid/internal/client/models"

func (s *Store) ReceiveNotifications(items []models.Notification) {
	if items == nil {
		items = []models.Notification{}
	}
	s.update(func(st *State) {
		markSucceeded(&st.Notifications.Meta, OpFetchNotifications)
		st.Notifications.Items = items
		st.Notifications.UnreadCount = 0
		for _, n := range items {
			if !n.IsRead {
				st.Notifications.UnreadCount++
			}
		}
	})
}

// AddNotification prepends n, bumping the unread count when it is unread.
func (s *Store) AddNotification(n models.Notification) {
	s.update(func(st *State) {
		st.Notifications.Items = append([]models.Notification{n}, st.Notifications.Items...)
		if !n.IsRead {
			st.Notifications.UnreadCount++
		}
	})
}

// MarkRead flags id as read. The unread count only moves the first time.
func (s *Store) MarkRead(id string) {
	s.update(func(st *State) {
		markSucceeded(&st.Notifications.Meta, OpMarkRead)
		for i := range st.Notifications.Items {
			n := &st.Notifications.Items[i]
			if n.ID == id && !n.IsRead {
				n.IsRead = true
				st.Notifications.UnreadCount = max(0, st.Notifications.UnreadCount-1)
			}
		}
	})
}

func (s *Store) MarkAllRead() {
	s.update(func(st *State) {
		markSucceeded(&st.Notifications.Meta, OpMarkAllRead)
		for i := range st.Notifications.Items {
			st.Notifications.Items[i].IsRead = true
		}
		st.Notifications.UnreadCount = 0
	})
}
