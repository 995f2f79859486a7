package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/testdash/internal/client/client"
)

// Register prompts for name, email and password and creates an account.
// The new session is active immediately.
func (a *App) Register(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	u, err := a.api.Register(ctx, fullName, email, password)
	if err != nil {
		return err
	}

	a.userName = u.Email
	a.printf("Registered and logged in as %s\n", u.FullName)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	u, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.userName = u.Email
	a.printf("Welcome back, %s\n", u.FullName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	a.printf("Logged out\n")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	a.printf("ID:        %s\nFull name: %s\nEmail:     %s\n", u.ID, u.FullName, u.Email)
	return nil
}

// UpdateProfile prompts for each field; empty answers keep the current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "New full name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "New password (empty to keep)", a.out)
	if err != nil {
		return err
	}

	u, err := a.api.UpdateProfile(ctx, client.ProfileUpdate{FullName: fullName, Email: email, Password: password})
	if err != nil {
		return err
	}

	a.userName = u.Email
	a.printf("Profile updated\n")
	return nil
}

func (a *App) DeleteProfile(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Delete your account? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		return errors.New("cancelled")
	}

	if err := a.api.DeleteProfile(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.printf("Account deleted\n")
	return nil
}
