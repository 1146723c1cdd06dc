package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Login prompts the user for credentials and tries to authenticate.
// On success the session is persisted and the prompt shows the user's name.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		return err
	}

	u, err := a.session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.userName = u.Name

	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	return nil
}

// Signup prompts for email, password and confirmation and creates an account.
// A confirmation mismatch is reported before anything is sent.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Signup(ctx, email, password, confirm); err != nil {
		return err
	}

	u, err := a.session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.userName = u.Name

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", u.Name)
	return nil
}

// Logout destroys the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
