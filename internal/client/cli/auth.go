package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/shared"
)

// Register prompts for the account details and creates the account. On
// success the user is signed in, exactly as after Login.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	var in models.RegisterInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Username", &in.Username},
		{"Email", &in.Email},
		{"Full name", &in.FullName},
		{"Mobile number", &in.MobileNumber},
	}
	for _, f := range fields {
		v, err := readLine(a.reader, a.out, f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := readSecret(a.out, "Password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)
	in.Password = string(password)

	if err := a.authService.Register(ctx, in); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.username())
	return nil
}

// Login prompts for an email or username and a password and signs in.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	identifier, err := readLine(a.reader, a.out, "Email or username")
	if err != nil {
		return err
	}

	password, err := readSecret(a.out, "Password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.authService.Login(ctx, models.LoginInput{Identifier: identifier, Password: string(password)}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", a.username())
	return nil
}

// Logout drops the session locally and on disk and closes the push channel.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Profile refreshes and prints the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	if err := a.authService.Profile(ctx); err != nil {
		return err
	}
	if u := a.store.State().Auth.User; u != nil {
		renderProfile(a.out, *u)
	}
	return nil
}
