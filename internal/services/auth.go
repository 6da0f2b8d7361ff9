// Package services contains the application services of the Judix client.
// This file defines the authentication service: login, registration,
// profile fetch/update, and local logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/judix-app/judix-cli/internal/api"
	"github.com/judix-app/judix-cli/internal/logging"
	"github.com/judix-app/judix-cli/internal/models"
	"github.com/judix-app/judix-cli/internal/session"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login: authenticate, persist the token, fetch and cache the profile.
//   - Me: fetch the current profile and refresh the cache.
//   - Register: create a new account on the server.
//   - UpdateProfile: patch username/bio and refresh the cache.
//   - Logout: wipe the local session; no network call.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	Register(ctx context.Context, reg models.Registration) error
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sess *session.Session, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log}
}

// Login posts the credentials, persists the returned token, then performs a
// follow-up profile fetch so the cached user is populated. A server response
// without a token fails before anything is persisted.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.session.SetToken(ctx, token); err != nil {
		return nil, fmt.Errorf("persisting token: %w", err)
	}
	return a.Me(ctx)
}

// Me fetches the current user's profile and caches it. A cache write
// failure is logged but does not fail the fetch: the cache is display-only.
func (a *authService) Me(ctx context.Context) (*models.User, error) {
	user, err := a.client.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.session.SetUser(ctx, user); err != nil {
		a.log.Warn(ctx, "caching user profile", "error", err)
	}
	return user, nil
}

// Register creates a new account. The server can decline a registration two
// ways: a non-2xx status, or a 2xx response carrying success=false. The
// second path is surfaced as api.ErrRegistrationRejected and logged
// distinctly so failed registrations are never silently dropped.
func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	err := a.client.Register(ctx, reg)
	if errors.Is(err, api.ErrRegistrationRejected) {
		a.log.Warn(ctx, "registration rejected by server", "email", reg.Email, "error", err)
		return err
	}
	return err
}

// UpdateProfile patches the mutable profile fields and refreshes the cache
// with the server's updated record.
func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	user, err := a.client.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	if err := a.session.SetUser(ctx, user); err != nil {
		a.log.Warn(ctx, "caching user profile", "error", err)
	}
	return user, nil
}

// Logout clears the token and cached user. Purely local.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}
