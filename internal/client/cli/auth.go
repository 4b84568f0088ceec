package cli

import (
	"context"
	"errors"
	"os"

	"holocron/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email, a password and its confirmation and
// attempts to create an account. On success the user is signed in and the
// session credential is persisted.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SignUp(ctx, email, password, confirm); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created. You are now signed in as", email)
	return nil
}

// Login prompts the user for credentials and tries to authenticate. The
// obtained token is persisted first and then verified against the account
// endpoint, so a valid session survives a restart even if verification is
// interrupted.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SignIn(ctx, email, password); err != nil {
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			printlnFn("Could not reach the server:", netErr.Error())
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Signed in as", email)
	return nil
}

// Logout discards the persisted credential and clears the in-memory session.
// No network call is made; the server keeps no session state.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.notes = nil
	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the signed-in account, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn("Signed in as", u.Email)
	return nil
}
