package api

import (
	"context"
	"net/http"

	"github.com/paharpur/siteadmin/internal/client/session"
	"github.com/paharpur/siteadmin/internal/client/store"
	"github.com/paharpur/siteadmin/internal/logging"
)

// authTransport makes every outbound call carry the current credential and
// makes every inbound authorization failure self-healing.
//
// Outgoing: if the store holds a token and the request does not already set
// an Authorization header, attach "Bearer <token>". Requests without a
// stored credential are dispatched unmodified (login and register are
// intentionally unauthenticated).
//
// Incoming: a 401 on a request that carried a credential clears the store,
// flips the session to unauthenticated and fires the one-shot invalidation
// hook. This is the only place allowed to clear the session as a side
// effect of a failed call. Only 401 counts: a 500 is a server fault, not an
// authorization verdict. Transport-level failures (no response at all)
// never touch the session.
type authTransport struct {
	base    http.RoundTripper
	store   store.Store
	session *session.Manager
	logger  logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	attached := false

	if req.Header.Get("Authorization") == "" {
		token, _, err := t.store.Load()
		if err != nil {
			t.logger.Warn(req.Context(), "credential load failed", "error", err)
		} else if token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
			attached = true
		}
	} else {
		attached = true
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// A 401 without a credential attached cannot invalidate anything: it is
	// the endpoint's answer (e.g. a failed login), not an expiry signal.
	if resp.StatusCode == http.StatusUnauthorized && attached {
		t.invalidate(req.Context())
	}

	return resp, nil
}

// invalidate clears the stored credential and fires the redirect hook. The
// session manager guarantees both run once even when several requests fail
// concurrently.
func (t *authTransport) invalidate(ctx context.Context) {
	t.session.Invalidate(func() {
		if err := t.store.Clear(); err != nil {
			t.logger.Error(ctx, "failed to clear session after auth failure", "error", err)
		}
	})
}
