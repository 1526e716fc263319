package store

import "github.com/dmitrijs2005/carbid/internal/client/models"

// SetSession records a successful login, register or restore.
func (s *Store) SetSession(op Op, token string, user models.User) {
	s.update(func(st *State) {
		markSucceeded(&st.Auth.Meta, op)
		st.Auth.Token = token
		st.Auth.User = &user
		st.Auth.IsAuthenticated = true
	})
}

// SetUser replaces the signed-in user after a profile fetch or update.
func (s *Store) SetUser(op Op, user models.User) {
	s.update(func(st *State) {
		markSucceeded(&st.Auth.Meta, op)
		st.Auth.User = &user
	})
}

// ClearSession drops the identity. A failed restore also lands here.
func (s *Store) ClearSession() {
	s.update(func(st *State) {
		st.Auth.Token = ""
		st.Auth.User = nil
		st.Auth.IsAuthenticated = false
	})
}
