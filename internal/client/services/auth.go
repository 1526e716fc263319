package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/repositories/session"
	"github.com/dmitrijs2005/carbid/internal/client/store"
	"github.com/dmitrijs2005/carbid/internal/client/validate"
	"github.com/dmitrijs2005/carbid/internal/logging"
)

var (
	ErrNotSignedIn      = errors.New("not signed in")
	ErrSessionExpired   = errors.New("saved session has expired")
	ErrSessionMalformed = errors.New("saved session token is malformed")
)

// AuthService signs the user in and out and keeps the saved session, the
// API token and the realtime connection in step with the store.
type AuthService interface {
	Login(ctx context.Context, in models.LoginInput) error
	Register(ctx context.Context, in models.RegisterInput) error
	Restore(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context, in models.ProfileUpdate) error
}

type authService struct {
	api      AuthAPI
	sessions session.Repository
	realtime Connector
	store    *store.Store
	log      logging.Logger
	now      func() time.Time
}

func NewAuthService(api AuthAPI, sessions session.Repository, realtime Connector, st *store.Store, log logging.Logger) AuthService {
	return &authService{api: api, sessions: sessions, realtime: realtime, store: st, log: log, now: time.Now}
}

func (a *authService) Login(ctx context.Context, in models.LoginInput) error {
	if err := validate.Struct(in); err != nil {
		return fail(a.store, store.SliceAuth, store.OpLogin, err)
	}

	a.store.Start(store.SliceAuth, store.OpLogin)
	resp, err := a.api.Login(ctx, in)
	if err != nil {
		return fail(a.store, store.SliceAuth, store.OpLogin, fmt.Errorf("login error: %w", err))
	}

	a.signIn(ctx, store.OpLogin, resp)
	return nil
}

func (a *authService) Register(ctx context.Context, in models.RegisterInput) error {
	if err := validate.Struct(in); err != nil {
		return fail(a.store, store.SliceAuth, store.OpRegister, err)
	}

	a.store.Start(store.SliceAuth, store.OpRegister)
	resp, err := a.api.Register(ctx, in)
	if err != nil {
		return fail(a.store, store.SliceAuth, store.OpRegister, fmt.Errorf("register error: %w", err))
	}

	a.signIn(ctx, store.OpRegister, resp)
	return nil
}

func (a *authService) signIn(ctx context.Context, op store.Op, resp models.AuthResponse) {
	a.api.SetToken(resp.AccessToken)

	s := models.Session{Token: resp.AccessToken, User: resp.User}
	if err := a.sessions.Save(ctx, s); err != nil {
		a.log.Warn(ctx, "failed to save session", "error", err)
	}

	a.store.SetSession(op, resp.AccessToken, resp.User)
	a.connect(ctx, resp.AccessToken)
}

func (a *authService) connect(ctx context.Context, token string) {
	if a.realtime == nil {
		return
	}
	if err := a.realtime.Connect(ctx, token); err != nil {
		a.log.Warn(ctx, "realtime connection failed", "error", err)
	}
}

// Restore signs in from the saved session. Expired or unreadable tokens
// are dropped together with the saved session.
func (a *authService) Restore(ctx context.Context) error {
	a.store.Start(store.SliceAuth, store.OpRestore)

	s, err := a.sessions.Load(ctx)
	if err == nil {
		err = a.checkToken(s.Token)
	}
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			a.log.Info(ctx, "discarding saved session", "error", err)
			if cerr := a.sessions.Clear(ctx); cerr != nil {
				a.log.Warn(ctx, "failed to clear session", "error", cerr)
			}
		}
		a.store.ClearSession()
		return fail(a.store, store.SliceAuth, store.OpRestore, err)
	}

	a.api.SetToken(s.Token)
	a.store.SetSession(store.OpRestore, s.Token, s.User)
	a.connect(ctx, s.Token)
	return nil
}

// checkToken reads the expiry of the token without verifying its
// signature; only the backend can do that.
func (a *authService) checkToken(token string) error {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionMalformed, err)
	}
	if claims.ExpiresAt != nil && !a.now().Before(claims.ExpiresAt.Time) {
		return ErrSessionExpired
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if a.realtime != nil {
		a.realtime.Disconnect()
	}
	a.api.SetToken("")
	a.store.Reset()

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) Profile(ctx context.Context) error {
	if !a.store.State().Auth.IsAuthenticated {
		return ErrNotSignedIn
	}

	a.store.Start(store.SliceAuth, store.OpProfile)
	u, err := a.api.Profile(ctx)
	if err != nil {
		return fail(a.store, store.SliceAuth, store.OpProfile, fmt.Errorf("profile error: %w", err))
	}

	a.store.SetUser(store.OpProfile, u)
	a.saveUser(ctx, u)
	return nil
}

func (a *authService) UpdateProfile(ctx context.Context, in models.ProfileUpdate) error {
	if !a.store.State().Auth.IsAuthenticated {
		return ErrNotSignedIn
	}
	if err := validate.Struct(in); err != nil {
		return fail(a.store, store.SliceAuth, store.OpProfile, err)
	}

	a.store.Start(store.SliceAuth, store.OpProfile)
	u, err := a.api.UpdateProfile(ctx, in)
	if err != nil {
		return fail(a.store, store.SliceAuth, store.OpProfile, fmt.Errorf("update profile error: %w", err))
	}

	a.store.SetUser(store.OpProfile, u)
	a.saveUser(ctx, u)
	return nil
}

func (a *authService) saveUser(ctx context.Context, u models.User) {
	token := a.store.State().Auth.Token
	if err := a.sessions.Save(ctx, models.Session{Token: token, User: u}); err != nil {
		a.log.Warn(ctx, "failed to save session", "error", err)
	}
}
