// Package guard decides whether protected content may be shown for the
// current session state. It is presentation-agnostic: callers map the
// decision onto their own rendering or navigation.
package guard

import "github.com/paharpur/siteadmin/internal/client/session"

// Decision is the route-guard outcome for a protected view.
type Decision int

const (
	// ShowLoading means the session state is not known yet. Callers must
	// render a neutral placeholder: never the protected content and never
	// a redirect, to avoid redirect flicker.
	ShowLoading Decision = iota

	// RenderContent means the protected content may be shown.
	RenderContent

	// RedirectLogin means the caller must navigate to the login entry point.
	RedirectLogin
)

func (d Decision) String() string {
	switch d {
	case RenderContent:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	default:
		return "loading"
	}
}

// Guard gates protected views on the session state.
type Guard struct {
	session *session.Manager
}

func New(s *session.Manager) *Guard {
	return &Guard{session: s}
}

// Decide maps the current session state onto a Decision. Only
// StateAuthenticated renders content; only StateUnauthenticated redirects.
func (g *Guard) Decide() Decision {
	switch g.session.State() {
	case session.StateAuthenticated:
		return RenderContent
	case session.StateUnauthenticated:
		return RedirectLogin
	default:
		return ShowLoading
	}
}
