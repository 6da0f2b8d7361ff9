// Package api implements the HTTP client for the Judix backend. A single
// configured client is shared by every service: it attaches the bearer token
// from the session store to outgoing requests and reacts to authentication
// failures by wiping the session and notifying the UI shell.
package api

import (
	"context"

	"github.com/judix-app/judix-cli/internal/models"
)

// Client is the transport contract the services are built on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// Login posts credentials and returns the bearer token. Persisting the
	// token is the caller's job.
	Login(ctx context.Context, email, password string) (string, error)

	// Me fetches the profile of the user the current token belongs to.
	Me(ctx context.Context) (*models.User, error)

	// Register creates a new account. A 2xx response whose payload reports
	// failure returns ErrRegistrationRejected.
	Register(ctx context.Context, reg models.Registration) error

	// UpdateProfile patches the current user's mutable fields.
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	// ListCases fetches all cases visible to the current user.
	ListCases(ctx context.Context) ([]models.Case, error)

	// GetCase fetches one case by its server-assigned id.
	GetCase(ctx context.Context, id string) (*models.Case, error)

	// CreateCase submits a new case and returns the created record.
	CreateCase(ctx context.Context, draft models.CaseDraft) (*models.Case, error)

	// UpdateCase submits a partial update and returns the updated record.
	UpdateCase(ctx context.Context, id string, upd models.CaseUpdate) (*models.Case, error)

	// DeleteCase removes a case.
	DeleteCase(ctx context.Context, id string) error
}

// SessionStore is the slice of the session layer the transport needs: a
// token to attach and a wipe switch for authentication failures.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
