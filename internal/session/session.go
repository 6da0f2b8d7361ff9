package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/judix-app/judix-cli/internal/models"
)

// Store keys. The token and cached user are independent entries: either may
// be present without the other.
const (
	keyToken = "token"
	keyUser  = "userData"
)

// Session is the explicit session object handed to the transport and the
// services. All operations are idempotent.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Token returns the persisted bearer token, or "" when unset.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetToken persists the bearer token, overwriting any previous value.
func (s *Session) SetToken(ctx context.Context, token string) error {
	return s.store.Set(ctx, keyToken, []byte(token))
}

// ClearToken deletes the persisted token.
func (s *Session) ClearToken(ctx context.Context) error {
	return s.store.Delete(ctx, keyToken)
}

// User returns the cached profile. A missing or undecodable stored value
// yields (nil, nil): cache corruption is never an error.
func (s *Session) User(ctx context.Context) (*models.User, error) {
	v, err := s.store.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

// SetUser caches the profile, serialized as JSON.
func (s *Session) SetUser(ctx context.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, keyUser, b)
}

// ClearUser deletes the cached profile.
func (s *Session) ClearUser(ctx context.Context) error {
	return s.store.Delete(ctx, keyUser)
}

// IsAuthenticated reports whether a token is present. It says nothing about
// the token still being accepted by the server.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// Clear wipes the token and the cached user.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// TokenExpiry reports the expiry claim of the stored token, when the token
// happens to be a JWT. The token is treated as opaque otherwise: no expiry,
// no error. The claim is read without signature verification; it is used
// for status display only, never for access decisions.
func (s *Session) TokenExpiry(ctx context.Context) (time.Time, bool) {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
