package models

import (
	"fmt"
	"strings"
	"time"
)

// CaseType classifies the legal matter.
type CaseType string

const (
	CaseTypeCivil     CaseType = "civil"
	CaseTypeCriminal  CaseType = "criminal"
	CaseTypeContract  CaseType = "contract"
	CaseTypeCorporate CaseType = "corporate"
	CaseTypeOther     CaseType = "other"
)

// CaseTypes lists the accepted case types in display order.
var CaseTypes = []CaseType{
	CaseTypeCivil, CaseTypeCriminal, CaseTypeContract, CaseTypeCorporate, CaseTypeOther,
}

func (t CaseType) Valid() bool {
	switch t {
	case CaseTypeCivil, CaseTypeCriminal, CaseTypeContract, CaseTypeCorporate, CaseTypeOther:
		return true
	}
	return false
}

// CaseStatus is the workflow state of a case. Transitions are not constrained
// client-side: any status may be set to any other.
type CaseStatus string

const (
	StatusDraft  CaseStatus = "draft"
	StatusActive CaseStatus = "active"
	StatusClosed CaseStatus = "closed"
)

// CaseStatuses lists the accepted statuses in display order.
var CaseStatuses = []CaseStatus{StatusDraft, StatusActive, StatusClosed}

func (s CaseStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed:
		return true
	}
	return false
}

// Case is a case record as reported by the backend. ID, Owner and the
// timestamps are server-assigned. IsArchived is independent of Status:
// archiving a case does not change its workflow state.
type Case struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail,omitempty"`
	CaseType    CaseType   `json:"caseType"`
	Status      CaseStatus `json:"status"`
	FiledAt     time.Time  `json:"filedAt"`
	Owner       string     `json:"owner"`
	IsArchived  bool       `json:"isArchived"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CaseDraft holds the caller-supplied fields for creating a case.
type CaseDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail,omitempty"`
	CaseType    CaseType   `json:"caseType"`
	Status      CaseStatus `json:"status"`
	FiledAt     time.Time  `json:"filedAt"`
}

// Validate checks the draft before submission: required fields, known enum
// values, and a plausible email when one is given. The service layer does
// not call this; it is for the prompt layer.
func (d CaseDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(d.ClientName) == "" {
		return fmt.Errorf("client name is required")
	}
	if !d.CaseType.Valid() {
		return fmt.Errorf("invalid case type %q", d.CaseType)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("invalid status %q", d.Status)
	}
	if d.FiledAt.IsZero() {
		return fmt.Errorf("filed date is required")
	}
	if d.ClientEmail != "" && !looksLikeEmail(d.ClientEmail) {
		return fmt.Errorf("invalid client email %q", d.ClientEmail)
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}

// CaseUpdate patches a subset of the mutable case fields. Nil fields are
// omitted from the request.
type CaseUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	ClientName  *string     `json:"clientName,omitempty"`
	ClientEmail *string     `json:"clientEmail,omitempty"`
	CaseType    *CaseType   `json:"caseType,omitempty"`
	Status      *CaseStatus `json:"status,omitempty"`
	FiledAt     *time.Time  `json:"filedAt,omitempty"`
	IsArchived  *bool       `json:"isArchived,omitempty"`
}

// CaseFilter describes the dashboard's visible-set selection.
type CaseFilter struct {
	// Search matches case-insensitively against Title and ClientName.
	Search string
	// Status keeps only cases in that state; empty keeps all.
	Status CaseStatus
}

// Apply returns the cases visible under the filter: search matches on title
// or client name, intersected with the status selection, with archived cases
// always excluded.
func (f CaseFilter) Apply(cases []Case) []Case {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Case, 0, len(cases))
	for _, c := range cases {
		if c.IsArchived {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Title), term) &&
			!strings.Contains(strings.ToLower(c.ClientName), term) {
			continue
		}
		out = append(out, c)
	}
	return out
}
