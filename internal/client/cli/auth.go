package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/paharpur/siteadmin/internal/client/api"
	"github.com/paharpur/siteadmin/internal/client/services"
	"github.com/paharpur/siteadmin/internal/client/session"
	"github.com/paharpur/siteadmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and attempts to create
// a new admin account.
//
// On success it prints "Account created, you can log in now." and returns
// nil. The password byte slice is securely wiped before returning. Policy
// violations are reported to the user; other errors are returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, userName, email, string(password)); err != nil {
		if errors.Is(err, services.ErrValidation) {
			printlnFn(err.Error())
			return nil
		}
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and tries to authenticate.
//
// Failures are reported per class: wrong credentials, rate limiting, and an
// unreachable server each get their own message, so the user knows whether
// to retype, wait or check connectivity. The password is securely wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidCredentials):
			printlnFn("Invalid email or password.")
		case errors.Is(err, api.ErrRateLimited):
			printlnFn("Too many attempts, please wait a moment and try again.")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable, please try again later.")
		case errors.Is(err, services.ErrValidation):
			printlnFn(err.Error())
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	if p := a.auth.Profile(); p != nil {
		printlnFn("Logged in as", p.Username)
	}
	return nil
}

// VerifySession re-runs the stored-session check against the server. Useful
// after a startup verification failed because the server was unreachable.
func (a *App) VerifySession(ctx context.Context) error {
	state, err := a.auth.Verify(ctx)
	if err != nil {
		printlnFn("Verification failed:", err.Error())
		return err
	}

	switch state {
	case session.StateAuthenticated:
		if p := a.auth.Profile(); p != nil {
			printlnFn("Session is valid; logged in as", p.Username)
		}
	case session.StateUnauthenticated:
		printlnFn("No valid session; please log in.")
	}
	return nil
}

// Whoami prints the stored admin profile.
func (a *App) Whoami(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	p := a.auth.Profile()
	if p == nil {
		printlnFn("No profile stored.")
		return nil
	}
	printlnFn("Username:", p.Username)
	printlnFn("Email:   ", p.Email)
	printlnFn("Role:    ", p.Role)
	return nil
}

// Admins prints every registered admin account.
func (a *App) Admins(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	admins, err := a.auth.Admins(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(admins) == 0 {
		printlnFn("No admin accounts.")
		return nil
	}
	for _, ad := range admins {
		printlnFn(fmt.Sprintf("[%d] %s <%s> (%s)", ad.ID, ad.Username, ad.Email, ad.Role))
	}
	return nil
}

// Logout clears the local session and notifies the backend in the
// background. The prompt returns immediately; a failed notification never
// brings the session back.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
