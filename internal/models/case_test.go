package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseTypeValid(t *testing.T) {
	for _, ct := range CaseTypes {
		assert.True(t, ct.Valid(), "type %q should be valid", ct)
	}
	assert.False(t, CaseType("maritime").Valid())
	assert.False(t, CaseType("").Valid())
}

func TestCaseStatusValid(t *testing.T) {
	for _, s := range CaseStatuses {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, CaseStatus("open").Valid())
	assert.False(t, CaseStatus("").Valid())
}

func validDraft() CaseDraft {
	return CaseDraft{
		Title:      "Smith v. Jones",
		ClientName: "Ann Smith",
		CaseType:   CaseTypeCivil,
		Status:     StatusDraft,
		FiledAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCaseDraftValidate(t *testing.T) {
	require.NoError(t, validDraft().Validate())

	tests := []struct {
		name   string
		mutate func(*CaseDraft)
	}{
		{"missing title", func(d *CaseDraft) { d.Title = "  " }},
		{"missing client name", func(d *CaseDraft) { d.ClientName = "" }},
		{"bad case type", func(d *CaseDraft) { d.CaseType = "maritime" }},
		{"bad status", func(d *CaseDraft) { d.Status = "open" }},
		{"missing filed date", func(d *CaseDraft) { d.FiledAt = time.Time{} }},
		{"bad client email", func(d *CaseDraft) { d.ClientEmail = "not-an-email" }},
		{"email without domain dot", func(d *CaseDraft) { d.ClientEmail = "a@b" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}

	t.Run("client email optional", func(t *testing.T) {
		d := validDraft()
		d.ClientEmail = ""
		assert.NoError(t, d.Validate())
	})
	t.Run("client email accepted", func(t *testing.T) {
		d := validDraft()
		d.ClientEmail = "ann@example.com"
		assert.NoError(t, d.Validate())
	})
}

func filterFixture() []Case {
	return []Case{
		{ID: "1", Title: "Smith v. Jones", ClientName: "Ann Smith", Status: StatusActive},
		{ID: "2", Title: "Estate of Brown", ClientName: "Bob Brown", Status: StatusDraft},
		{ID: "3", Title: "Acme contract review", ClientName: "Acme Corp", Status: StatusActive, IsArchived: true},
		{ID: "4", Title: "People v. Doe", ClientName: "Jane Doe", Status: StatusClosed},
		{ID: "5", Title: "Smithfield merger", ClientName: "Carl Gray", Status: StatusClosed},
	}
}

func ids(cases []Case) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.ID
	}
	return out
}

func TestCaseFilterApply(t *testing.T) {
	cases := filterFixture()

	t.Run("empty filter hides only archived", func(t *testing.T) {
		got := CaseFilter{}.Apply(cases)
		assert.Equal(t, []string{"1", "2", "4", "5"}, ids(got))
	})

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		got := CaseFilter{Search: "smith"}.Apply(cases)
		assert.Equal(t, []string{"1", "5"}, ids(got))
	})

	t.Run("search matches client name", func(t *testing.T) {
		got := CaseFilter{Search: "doe"}.Apply(cases)
		assert.Equal(t, []string{"4"}, ids(got))
	})

	t.Run("status filter intersects with search", func(t *testing.T) {
		got := CaseFilter{Search: "smith", Status: StatusClosed}.Apply(cases)
		assert.Equal(t, []string{"5"}, ids(got))
	})

	t.Run("archived never visible even when matching", func(t *testing.T) {
		got := CaseFilter{Search: "acme", Status: StatusActive}.Apply(cases)
		assert.Empty(t, got)
	})

	t.Run("no match yields empty non-nil set", func(t *testing.T) {
		got := CaseFilter{Search: "zzz"}.Apply(cases)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
