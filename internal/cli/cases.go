package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/judix-app/judix-cli/internal/models"
)

// List fetches all cases and prints the ones visible under the dashboard
// filter: search terms (from args, persisted between calls) matched against
// title and client name, the selected status, archived always hidden.
func (a *App) List(ctx context.Context, args []string) error {
	if len(args) > 0 {
		a.searchTerm = strings.Join(args, " ")
	} else if a.searchTerm != "" {
		// bare `list` resets the previous search
		a.searchTerm = ""
	}

	cases, err := a.caseService.List(ctx)
	if err != nil {
		return err
	}

	filter := models.CaseFilter{Search: a.searchTerm, Status: a.statusFilter}
	visible := filter.Apply(cases)
	if len(visible) == 0 {
		fmt.Fprintln(a.out, "No cases found.")
		return nil
	}
	renderCaseTable(a.out, visible)
	return nil
}

// Filter sets the persistent status filter. "all" or no argument clears it.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "all" {
		a.statusFilter = ""
		fmt.Fprintln(a.out, "Status filter cleared.")
		return nil
	}
	status := models.CaseStatus(args[0])
	if !status.Valid() {
		return fmt.Errorf("unknown status %q, expected one of: draft, active, closed", args[0])
	}
	a.statusFilter = status
	fmt.Fprintf(a.out, "Showing %s cases only.\n", status)
	return nil
}

// Show prints one case in full.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter case id")
	if err != nil {
		return err
	}
	c, err := a.caseService.Get(ctx, id)
	if err != nil {
		return err
	}
	renderCase(a.out, c)
	return nil
}

// Create walks through the intake prompts, validates the collected draft,
// and submits it.
func (a *App) Create(ctx context.Context) error {
	title, err := GetRequiredText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	clientName, err := GetRequiredText(a.reader, "Client name", a.out)
	if err != nil {
		return err
	}
	clientEmail, err := getSimpleText(a.reader, "Client email (optional)", a.out)
	if err != nil {
		return err
	}
	caseType, err := GetChoice(a.reader, "Case type", caseTypeOptions(), string(models.CaseTypeOther), a.out)
	if err != nil {
		return err
	}
	status, err := GetChoice(a.reader, "Status", caseStatusOptions(), string(models.StatusDraft), a.out)
	if err != nil {
		return err
	}
	filedAt, err := GetDate(a.reader, "Filed date", a.out)
	if err != nil {
		return err
	}

	draft := models.CaseDraft{
		Title:       title,
		Description: description,
		ClientName:  clientName,
		ClientEmail: clientEmail,
		CaseType:    models.CaseType(caseType),
		Status:      models.CaseStatus(status),
		FiledAt:     filedAt,
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	created, err := a.caseService.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created case %s\n", created.ID)
	return nil
}

// Edit fetches a case, prompts for each mutable field with
// empty-keeps-current semantics, and submits the collected partial update.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter case id to edit")
	if err != nil {
		return err
	}
	current, err := a.caseService.Get(ctx, id)
	if err != nil {
		return err
	}
	renderCase(a.out, current)

	var upd models.CaseUpdate

	if v, err := getSimpleText(a.reader, "Title (empty to keep)", a.out); err != nil {
		return err
	} else if v != "" {
		upd.Title = &v
	}
	if v, err := getSimpleText(a.reader, "Description (empty to keep)", a.out); err != nil {
		return err
	} else if v != "" {
		upd.Description = &v
	}
	if v, err := getSimpleText(a.reader, "Client name (empty to keep)", a.out); err != nil {
		return err
	} else if v != "" {
		upd.ClientName = &v
	}
	if v, err := getSimpleText(a.reader, "Client email (empty to keep)", a.out); err != nil {
		return err
	} else if v != "" {
		upd.ClientEmail = &v
	}
	if v, err := GetChoice(a.reader, "Case type", caseTypeOptions(), string(current.CaseType), a.out); err != nil {
		return err
	} else if t := models.CaseType(v); t != current.CaseType {
		upd.CaseType = &t
	}
	if v, err := GetChoice(a.reader, "Status", caseStatusOptions(), string(current.Status), a.out); err != nil {
		return err
	} else if st := models.CaseStatus(v); st != current.Status {
		upd.Status = &st
	}
	if v, err := GetDate(a.reader, "Filed date (empty to keep)", a.out); err != nil {
		return err
	} else if !v.IsZero() {
		upd.FiledAt = &v
	}

	if upd == (models.CaseUpdate{}) {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	updated, err := a.caseService.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated case %s\n", updated.ID)
	return nil
}

// SetStatus moves a case to the given workflow state.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: status <id> <draft|active|closed>")
	}
	status := models.CaseStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("unknown status %q, expected one of: draft, active, closed", args[1])
	}
	updated, err := a.caseService.SetStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Case %s is now %s\n", updated.ID, updated.Status)
	return nil
}

// Archive hides a case from the dashboard without touching its status.
func (a *App) Archive(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter case id to archive")
	if err != nil {
		return err
	}
	updated, err := a.caseService.Archive(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Archived case %s\n", updated.ID)
	return nil
}

// Delete removes a case permanently, after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter case id to delete")
	if err != nil {
		return err
	}
	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete case %s permanently? (yes/no)", id), a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Aborted.")
		return nil
	}
	if err := a.caseService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted case %s\n", id)
	return nil
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func caseTypeOptions() []string {
	opts := make([]string, len(models.CaseTypes))
	for i, t := range models.CaseTypes {
		opts[i] = string(t)
	}
	return opts
}

func caseStatusOptions() []string {
	opts := make([]string, len(models.CaseStatuses))
	for i, s := range models.CaseStatuses {
		opts[i] = string(s)
	}
	return opts
}
