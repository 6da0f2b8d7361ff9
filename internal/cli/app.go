// Package cli implements the interactive shell of the Judix client: the
// case dashboard, case detail/intake flows, and the auth prompts.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/judix-app/judix-cli/internal/api"
	"github.com/judix-app/judix-cli/internal/config"
	"github.com/judix-app/judix-cli/internal/logging"
	"github.com/judix-app/judix-cli/internal/models"
	"github.com/judix-app/judix-cli/internal/services"
	"github.com/judix-app/judix-cli/internal/session"

	_ "modernc.org/sqlite"
)

// App wires the session store and the services to the interactive shell.
//
// user is the in-memory profile of the logged-in user; nil means logged
// out. statusFilter and searchTerm carry the dashboard's persistent filter
// state between list commands.
type App struct {
	config       *config.Config
	session      *session.Session
	authService  services.AuthService
	caseService  services.CaseService
	log          logging.Logger
	reader       *bufio.Reader
	out          io.Writer
	user         *models.User
	statusFilter models.CaseStatus
	searchTerm   string
}

// NewApp opens the local state database and builds the full service stack.
// The returned cleanup closes the state database.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, func(), error) {
	db, err := session.OpenDatabase(ctx, cfg.StatePath)
	if err != nil {
		return nil, nil, err
	}

	sess := session.New(session.NewSQLiteStore(db))

	app := &App{
		config:  cfg,
		session: sess,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	client, err := api.NewHTTPClient(cfg.APIBaseURL, sess, log,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithOnUnauthorized(app.onSessionExpired),
	)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	app.authService = services.NewAuthService(client, sess, log)
	app.caseService = services.NewCaseService(client)

	return app, func() { db.Close() }, nil
}

// Run restores a previous session when possible, then enters the shell loop.
func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	runShell(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// restoreSession revalidates a persisted token against the server so a
// restarted shell comes up logged in. A rejected token has already wiped
// the session by the time Me returns.
func (a *App) restoreSession(ctx context.Context) {
	if !a.session.IsAuthenticated(ctx) {
		return
	}
	user, err := a.authService.Me(ctx)
	if err != nil {
		a.log.Debug(ctx, "session restore failed", "error", err)
		return
	}
	a.user = user
	fmt.Fprintf(a.out, "Welcome back, %s\n", user.Username)
}

// onSessionExpired is the transport's 401 callback: the session store is
// already wiped, so drop the in-memory user and tell the operator.
func (a *App) onSessionExpired() {
	a.user = nil
	fmt.Fprintln(a.out, "Session expired, please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// status builds the prompt decoration, e.g. "(anna, filter: active)".
func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	s := a.user.Username
	if a.statusFilter != "" {
		s += ", filter: " + string(a.statusFilter)
	}
	return "(" + s + ")"
}
