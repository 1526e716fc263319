package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carbid/internal/client/api"
	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/repositories/session"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/client/validate"
)

type authFixture struct {
	api      *MockAuthAPI
	conn     *MockConnector
	sessions *session.SQLiteRepository
	store    *store.Store
	svc      AuthService
}

func newAuthFixture(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	f := authFixture{
		api:      NewMockAuthAPI(ctrl),
		conn:     NewMockConnector(ctrl),
		sessions: setupSessions(t),
		store:    store.New(),
	}
	f.svc = NewAuthService(f.api, f.sessions, f.conn, f.store, nopLog)
	return f
}

func TestAuth_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	in := models.LoginInput{Identifier: "alice", Password: "secret1"}

	gomock.InOrder(
		f.api.EXPECT().Login(gomock.Any(), in).Return(models.AuthResponse{AccessToken: "tok-1", User: alice}, nil),
		f.api.EXPECT().SetToken("tok-1"),
		f.conn.EXPECT().Connect(gomock.Any(), "tok-1").Return(nil),
	)

	require.NoError(t, f.svc.Login(testCtx(), in))

	st := f.store.State()
	assert.True(t, st.Auth.IsAuthenticated)
	assert.Equal(t, "tok-1", st.Auth.Token)
	assert.Equal(t, alice, *st.Auth.User)
	assert.Equal(t, store.StatusSucceeded, st.Auth.Requests.Get(store.OpLogin).Status)

	saved, err := f.sessions.Load(testCtx())
	require.NoError(t, err)
	assert.Equal(t, models.Session{Token: "tok-1", User: alice}, saved)
}

func TestAuth_Login_RealtimeFailureIsNotFatal(t *testing.T) {
	f := newAuthFixture(t)

	f.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "t", User: alice}, nil)
	f.api.EXPECT().SetToken("t")
	f.conn.EXPECT().Connect(gomock.Any(), "t").Return(errors.New("dial tcp: refused"))

	require.NoError(t, f.svc.Login(testCtx(), models.LoginInput{Identifier: "alice", Password: "x"}))
	assert.True(t, f.store.State().Auth.IsAuthenticated)
}

func TestAuth_Login_Rejected(t *testing.T) {
	f := newAuthFixture(t)

	f.api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, &api.Error{StatusCode: 401, Message: "Invalid credentials"})

	err := f.svc.Login(testCtx(), models.LoginInput{Identifier: "alice", Password: "bad"})
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, err.Error(), "login error")

	st := f.store.State()
	assert.False(t, st.Auth.IsAuthenticated)
	assert.Equal(t, "Invalid credentials", st.Auth.Error)
	assert.Equal(t, store.Request{Status: store.StatusFailed, Error: "Invalid credentials"}, st.Auth.Requests.Get(store.OpLogin))
}

func TestAuth_Login_InvalidInputSkipsNetwork(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Login(testCtx(), models.LoginInput{Identifier: "alice"})
	require.ErrorIs(t, err, validate.ErrInvalid)
	assert.Equal(t, "password is required", f.store.State().Auth.Error)
}

func TestAuth_Register(t *testing.T) {
	f := newAuthFixture(t)
	in := models.RegisterInput{
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "secret1",
		FullName:     "Alice",
		MobileNumber: "0123456789",
	}

	f.api.EXPECT().Register(gomock.Any(), in).Return(models.AuthResponse{AccessToken: "t2", User: alice}, nil)
	f.api.EXPECT().SetToken("t2")
	f.conn.EXPECT().Connect(gomock.Any(), "t2").Return(nil)

	require.NoError(t, f.svc.Register(testCtx(), in))
	assert.Equal(t, store.StatusSucceeded, f.store.State().Auth.Requests.Get(store.OpRegister).Status)

	bad := in
	bad.MobileNumber = "12"
	err := f.svc.Register(testCtx(), bad)
	require.ErrorIs(t, err, validate.ErrInvalid)
}

func TestAuth_Restore(t *testing.T) {
	f := newAuthFixture(t)
	token := makeToken(t, time.Now().Add(time.Hour))
	require.NoError(t, f.sessions.Save(testCtx(), models.Session{Token: token, User: alice}))

	f.api.EXPECT().SetToken(token)
	f.conn.EXPECT().Connect(gomock.Any(), token).Return(nil)

	require.NoError(t, f.svc.Restore(testCtx()))
	st := f.store.State()
	assert.True(t, st.Auth.IsAuthenticated)
	assert.Equal(t, "alice", st.Auth.User.Username)
}

func TestAuth_Restore_Expired(t *testing.T) {
	f := newAuthFixture(t)
	token := makeToken(t, time.Now().Add(-time.Minute))
	require.NoError(t, f.sessions.Save(testCtx(), models.Session{Token: token, User: alice}))

	err := f.svc.Restore(testCtx())
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, f.store.State().Auth.IsAuthenticated)

	_, err = f.sessions.Load(testCtx())
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestAuth_Restore_Malformed(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.sessions.Save(testCtx(), models.Session{Token: "not-a-jwt", User: alice}))

	err := f.svc.Restore(testCtx())
	require.ErrorIs(t, err, ErrSessionMalformed)
	assert.Equal(t, store.StatusFailed, f.store.State().Auth.Requests.Get(store.OpRestore).Status)
}

func TestAuth_Restore_Nothing(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Restore(testCtx())
	require.ErrorIs(t, err, session.ErrNoSession)
	assert.False(t, f.store.State().Auth.IsAuthenticated)
}

func TestAuth_Logout(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.sessions.Save(testCtx(), models.Session{Token: "t", User: alice}))
	f.store.SetSession(store.OpLogin, "t", alice)
	f.store.AddNotification(models.Notification{ID: "n1"})

	f.conn.EXPECT().Disconnect()
	f.api.EXPECT().SetToken("")

	require.NoError(t, f.svc.Logout(testCtx()))

	st := f.store.State()
	assert.False(t, st.Auth.IsAuthenticated)
	assert.Nil(t, st.Auth.User)
	assert.Empty(t, st.Notifications.Items)

	_, err := f.sessions.Load(testCtx())
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestAuth_Profile(t *testing.T) {
	f := newAuthFixture(t)
	require.ErrorIs(t, f.svc.Profile(testCtx()), ErrNotSignedIn)

	f.store.SetSession(store.OpLogin, "t", alice)
	updated := alice
	updated.FullName = "Alice Liddell"

	f.api.EXPECT().Profile(gomock.Any()).Return(updated, nil)
	require.NoError(t, f.svc.Profile(testCtx()))
	assert.Equal(t, "Alice Liddell", f.store.State().Auth.User.FullName)

	saved, err := f.sessions.Load(testCtx())
	require.NoError(t, err)
	assert.Equal(t, "t", saved.Token)
	assert.Equal(t, "Alice Liddell", saved.User.FullName)
}

func TestAuth_UpdateProfile(t *testing.T) {
	f := newAuthFixture(t)
	f.store.SetSession(store.OpLogin, "t", alice)

	err := f.svc.UpdateProfile(testCtx(), models.ProfileUpdate{Email: "broken"})
	require.ErrorIs(t, err, validate.ErrInvalid)

	in := models.ProfileUpdate{MobileNumber: "0987654321"}
	updated := alice
	updated.MobileNumber = "0987654321"
	f.api.EXPECT().UpdateProfile(gomock.Any(), in).Return(updated, nil)

	require.NoError(t, f.svc.UpdateProfile(testCtx(), in))
	assert.Equal(t, "0987654321", f.store.State().Auth.User.MobileNumber)
}
