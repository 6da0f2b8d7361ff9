package cli

import (
	"context"
	"fmt"

	"github.com/judix-app/judix-cli/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the fetched
// profile becomes the shell's logged-in user.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

// Register prompts for the new-account fields and attempts to create an
// account. It does not log the new user in; a login follows separately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "Enter bio (optional)", a.out)
	if err != nil {
		return err
	}

	reg := models.Registration{Username: username, Email: email, Password: password, Bio: bio}
	if err := a.authService.Register(ctx, reg); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful, you can now log in.")
	return nil
}

// WhoAmI prints the current profile, refreshed from the server.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.authService.Me(ctx)
	if err != nil {
		return err
	}
	a.user = user
	fmt.Fprintf(a.out, "%s <%s>\n", user.Username, user.Email)
	if user.Bio != "" {
		fmt.Fprintln(a.out, user.Bio)
	}
	if exp, ok := a.session.TokenExpiry(ctx); ok {
		fmt.Fprintf(a.out, "Session expires %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// Profile updates the mutable profile fields. Empty answers keep the
// current values.
func (a *App) Profile(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "New username (empty to keep)", a.out)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "New bio (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var upd models.ProfileUpdate
	if username != "" {
		upd.Username = &username
	}
	if bio != "" {
		upd.Bio = &bio
	}
	if upd.Username == nil && upd.Bio == nil {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	user, err := a.authService.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}
	a.user = user
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// Logout wipes the persisted session and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.statusFilter = ""
	a.searchTerm = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
