package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func TestRegister_Success(t *testing.T) {
	a, out := newTestApp(t, "")
	f := &fakeAuth{st: a.store}
	a.authService = f

	stubInputs(t, "secret1", "bob", "bob@example.com", "Bob B", "5551234567")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, models.RegisterInput{
		Username:     "bob",
		Email:        "bob@example.com",
		Password:     "secret1",
		FullName:     "Bob B",
		MobileNumber: "5551234567",
	}, f.registerIn)
	assert.Contains(t, out.String(), "Welcome, bob!")
}

func TestRegister_ErrorPropagates(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.authService = &fakeAuth{st: a.store, err: errors.New("User already exists")}
	stubInputs(t, "secret1", "bob", "bob@example.com", "Bob B", "5551234567")

	require.EqualError(t, a.Register(context.Background()), "User already exists")
	assert.False(t, a.isLoggedIn())
}

func TestRegister_InputError(t *testing.T) {
	a, _ := newTestApp(t, "")
	f := &fakeAuth{st: a.store}
	a.authService = f
	stubInputs(t, "secret1", "bob")

	require.Error(t, a.Register(context.Background()))
	assert.Empty(t, f.registerIn.Username)
}

func TestLogin_Success(t *testing.T) {
	a, out := newTestApp(t, "")
	f := &fakeAuth{st: a.store}
	a.authService = f
	prompts := stubInputs(t, "hunter2", "alice@example.com")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, models.LoginInput{Identifier: "alice@example.com", Password: "hunter2"}, f.loginIn)
	assert.Equal(t, []string{"Email or username"}, *prompts)
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Signed in as alice")
}

func TestLogin_Failure(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.authService = &fakeAuth{st: a.store, err: errors.New("Invalid credentials")}
	stubInputs(t, "nope", "alice")

	require.EqualError(t, a.Login(context.Background()), "Invalid credentials")
	assert.False(t, a.isLoggedIn())
}

func TestLogout(t *testing.T) {
	a, out := newTestApp(t, "")
	f := &fakeAuth{st: a.store}
	a.authService = f
	signIn(a)

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Signed out.")
}

func TestLogout_ErrorPropagates(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.authService = &fakeAuth{st: a.store, err: errors.New("clean-fail")}
	require.Error(t, a.Logout(context.Background()))
}

func TestProfile(t *testing.T) {
	a, out := newTestApp(t, "")
	a.authService = &fakeAuth{st: a.store}
	signIn(a)

	require.NoError(t, a.Profile(context.Background()))
	assert.Contains(t, out.String(), "Alice Anders")
	assert.Contains(t, out.String(), "alice@example.com")
}
