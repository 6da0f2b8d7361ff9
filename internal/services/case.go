package services

import (
	"context"

	"github.com/judix-app/judix-cli/internal/api"
	"github.com/judix-app/judix-cli/internal/models"
)

// CaseService defines the CRUD operations on case records. Every call
// requires an authenticated session; the transport attaches the token.
type CaseService interface {
	List(ctx context.Context) ([]models.Case, error)
	Get(ctx context.Context, id string) (*models.Case, error)
	Create(ctx context.Context, draft models.CaseDraft) (*models.Case, error)
	Update(ctx context.Context, id string, upd models.CaseUpdate) (*models.Case, error)
	SetStatus(ctx context.Context, id string, status models.CaseStatus) (*models.Case, error)
	Archive(ctx context.Context, id string) (*models.Case, error)
	Delete(ctx context.Context, id string) error
}

type caseService struct {
	client api.Client
}

// NewCaseService constructs a CaseService bound to the given API client.
func NewCaseService(client api.Client) CaseService {
	return &caseService{client: client}
}

func (s *caseService) List(ctx context.Context) ([]models.Case, error) {
	return s.client.ListCases(ctx)
}

// Get fetches one case. The id is caller-supplied and not validated
// locally; an unknown id surfaces as api.ErrNotFound.
func (s *caseService) Get(ctx context.Context, id string) (*models.Case, error) {
	return s.client.GetCase(ctx, id)
}

// Create submits a new case. Required-field enforcement belongs to the
// prompt/form layer; the service trusts its caller.
func (s *caseService) Create(ctx context.Context, draft models.CaseDraft) (*models.Case, error) {
	return s.client.CreateCase(ctx, draft)
}

// Update submits a partial update. The result is always the updated record.
func (s *caseService) Update(ctx context.Context, id string, upd models.CaseUpdate) (*models.Case, error) {
	return s.client.UpdateCase(ctx, id, upd)
}

// SetStatus moves the case to the given workflow state. Any state may be
// set from any other; there is no client-side state machine.
func (s *caseService) SetStatus(ctx context.Context, id string, status models.CaseStatus) (*models.Case, error) {
	return s.Update(ctx, id, models.CaseUpdate{Status: &status})
}

// Archive flags the case as archived. The workflow status is untouched.
func (s *caseService) Archive(ctx context.Context, id string) (*models.Case, error) {
	archived := true
	return s.Update(ctx, id, models.CaseUpdate{IsArchived: &archived})
}

func (s *caseService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteCase(ctx, id)
}
