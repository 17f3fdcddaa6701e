// Package cli implements the interactive admin console for the Paharpur
// site backend: authentication, content editing and enquiry triage.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/paharpur/siteadmin/internal/client/api"
	"github.com/paharpur/siteadmin/internal/client/config"
	"github.com/paharpur/siteadmin/internal/client/guard"
	"github.com/paharpur/siteadmin/internal/client/services"
	"github.com/paharpur/siteadmin/internal/client/session"
	"github.com/paharpur/siteadmin/internal/client/store"
	"github.com/paharpur/siteadmin/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Manager
	guard   *guard.Guard
	auth    services.AuthService
	content *services.ContentService
	logger  logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	path := c.SessionFile
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	st := store.NewFileStore(path)
	sess := session.NewManager()
	sess.OnInvalidate(func() {
		printlnFn("Session expired. Please log in again.")
	})

	apiClient := api.NewHTTPClient(c.ServerURL, st, sess, c.RequestTimeout, logger)

	as := services.NewAuthService(apiClient, st, sess, logger)
	cs := services.NewContentService(apiClient)

	return &App{
		config:  c,
		session: sess,
		guard:   guard.New(sess),
		auth:    as,
		content: cs,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run verifies any stored session once, then hands control to the REPL.
// A transport failure during verification leaves the state undetermined;
// the user can retry with the 'verify' command.
func (a *App) Run(ctx context.Context) {
	state, err := a.auth.Verify(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not verify stored session", "error", err)
		printlnFn("Could not reach the server to verify your session; type 'verify' to retry.")
	} else if state == session.StateAuthenticated {
		if p := a.auth.Profile(); p != nil {
			printlnFn("Welcome back,", p.Username)
		}
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.guard.Decide() == guard.RenderContent
}

// ensureAuthorized gates a protected command on the current session state.
// Unknown state never redirects to login; it asks for a verify instead.
func (a *App) ensureAuthorized() bool {
	switch a.guard.Decide() {
	case guard.RenderContent:
		return true
	case guard.RedirectLogin:
		printlnFn("Please log in first (type 'login').")
		return false
	default:
		printlnFn("Session state is not known yet; type 'verify' to check it.")
		return false
	}
}

func (a *App) getStatus() string {
	if p := a.auth.Profile(); p != nil && a.isLoggedIn() {
		return "(" + p.Username + ")"
	}
	return ""
}
