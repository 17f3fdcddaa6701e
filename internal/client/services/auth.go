// Package services contains application services for the admin CLI. This
// file defines the authentication service: login, register, session
// verification and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/paharpur/siteadmin/internal/client/api"
	"github.com/paharpur/siteadmin/internal/client/models"
	"github.com/paharpur/siteadmin/internal/client/session"
	"github.com/paharpur/siteadmin/internal/client/store"
	"github.com/paharpur/siteadmin/internal/logging"
)

// ErrValidation marks input problems caught before any network call.
var ErrValidation = errors.New("validation error")

// logoutNotifyTimeout bounds the fire-and-forget backend notification.
var logoutNotifyTimeout = 5 * time.Second

// AuthService defines the session-transition operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session pair.
//   - Register: create a new admin account; no session state is touched.
//   - Verify: confirm the stored credential with the backend, at most once
//     per app run; transport errors are propagated, not treated as logout.
//   - Logout: clear the local session first, then notify the backend
//     best-effort.
//   - Admins: list every admin account for the accounts view.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Verify(ctx context.Context) (session.State, error)
	Logout(ctx context.Context) error
	Profile() *models.UserProfile
	Admins(ctx context.Context) ([]models.UserProfile, error)
}

type authService struct {
	client  api.Client
	store   store.Store
	session *session.Manager
	logger  logging.Logger

	mu            sync.Mutex
	loginInFlight bool
}

// NewAuthService constructs an AuthService bound to the given API client,
// credential store and session manager.
func NewAuthService(client api.Client, st store.Store, sess *session.Manager, logger logging.Logger) AuthService {
	return &authService{
		client:  client,
		store:   st,
		session: sess,
		logger:  logger.With("module", "auth_service"),
	}
}

// Login authenticates and atomically persists the token/profile pair. A
// second call while one is already in flight is a no-op, so a double submit
// produces exactly one network request and one store write. On failure
// nothing is mutated; the error is already classified by the API layer
// (invalid credentials, rate limited, unavailable).
func (a *authService) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	a.mu.Lock()
	if a.loginInFlight {
		a.mu.Unlock()
		return nil
	}
	a.loginInFlight = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.loginInFlight = false
		a.mu.Unlock()
	}()

	token, profile, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	// The store write is acknowledged before any navigation is requested;
	// there is no timing guess between "logged in" and "session readable".
	if err := a.store.Save(token, profile); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	a.session.SetAuthenticated()
	a.session.MarkVerified()

	a.logger.Info(ctx, "login successful", "user", profile.Username)
	return nil
}

// Register creates a new admin account. The password policy is checked
// before any network call and is a fixed rule, not a config option.
func (a *authService) Register(ctx context.Context, username, email, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: username and email are required", ErrValidation)
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return a.client.Register(ctx, username, email, password)
}

// Verify performs the once-per-run verification round-trip. Outcomes:
//
//   - no stored credential: unauthenticated, no network call;
//   - backend confirms: authenticated, refreshed profile persisted;
//   - backend rejects (401): unauthenticated; the transport has already
//     cleared the store and fired the redirect hook;
//   - transport error: the error is returned and the state is left exactly
//     as it was, so the caller can retry instead of logging the user out.
func (a *authService) Verify(ctx context.Context) (session.State, error) {
	if a.session.Verified() {
		return a.session.State(), nil
	}

	token, _, err := a.store.Load()
	if err != nil {
		return a.session.State(), fmt.Errorf("load session: %w", err)
	}
	if token == "" {
		a.session.SetUnauthenticated()
		a.session.MarkVerified()
		return session.StateUnauthenticated, nil
	}

	profile, err := a.client.Verify(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.session.MarkVerified()
			return session.StateUnauthenticated, nil
		}
		return a.session.State(), err
	}

	if err := a.store.Save(token, profile); err != nil {
		return a.session.State(), fmt.Errorf("persist refreshed profile: %w", err)
	}
	a.session.SetAuthenticated()
	a.session.MarkVerified()
	return session.StateAuthenticated, nil
}

// Logout clears the local session before any network wait: the credential
// store is emptied, the state flips to unauthenticated, and only then is
// the backend notified in the background. A notification failure is logged
// and never blocks or reverses the local clear.
func (a *authService) Logout(ctx context.Context) error {
	token, _, err := a.store.Load()
	if err != nil {
		a.logger.Warn(ctx, "could not read session before logout", "error", err)
	}

	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.session.SetUnauthenticated()

	if token != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), logoutNotifyTimeout)
			defer cancel()
			if err := a.client.Logout(ctx, token); err != nil {
				a.logger.Warn(ctx, "backend logout notification failed", "error", err)
			}
		}()
	}

	a.logger.Info(ctx, "logged out")
	return nil
}

// Profile returns the stored user profile, or nil when logged out. Display
// only; never an authorization input.
func (a *authService) Profile() *models.UserProfile {
	_, profile, err := a.store.Load()
	if err != nil {
		return nil
	}
	return profile
}

// Admins lists every registered admin account. The transport handles the
// credential; a 401 goes through the usual invalidation path.
func (a *authService) Admins(ctx context.Context) ([]models.UserProfile, error) {
	return a.client.Admins(ctx)
}
