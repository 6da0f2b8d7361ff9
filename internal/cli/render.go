package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/judix-app/judix-cli/internal/models"
)

const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiGray   = "\x1b[90m"
	ansiReset  = "\x1b[0m"
)

// statusColor: active green, draft yellow, closed gray.
func statusColor(s models.CaseStatus) string {
	switch s {
	case models.StatusActive:
		return ansiGreen
	case models.StatusDraft:
		return ansiYellow
	default:
		return ansiGray
	}
}

func coloredStatus(s models.CaseStatus) string {
	return statusColor(s) + string(s) + ansiReset
}

func renderCaseTable(w io.Writer, cases []models.Case) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCLIENT\tTYPE\tSTATUS\tFILED")
	for _, c := range cases {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Title, c.ClientName, c.CaseType, coloredStatus(c.Status),
			c.FiledAt.Format("2006-01-02"))
	}
	tw.Flush()
}

func renderCase(w io.Writer, c *models.Case) {
	fmt.Fprintf(w, "%s  %s\n", c.Title, coloredStatus(c.Status))
	fmt.Fprintf(w, "  ID:     %s\n", c.ID)
	fmt.Fprintf(w, "  Client: %s", c.ClientName)
	if c.ClientEmail != "" {
		fmt.Fprintf(w, " <%s>", c.ClientEmail)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Type:   %s\n", c.CaseType)
	fmt.Fprintf(w, "  Filed:  %s\n", c.FiledAt.Format("2006-01-02"))
	if c.IsArchived {
		fmt.Fprintln(w, "  Archived")
	}
	if c.Description != "" {
		fmt.Fprintf(w, "  %s\n", c.Description)
	}
	if !c.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "  Last updated: %s\n", c.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
}
