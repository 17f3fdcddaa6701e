// Package session owns the client-side session state machine. The state is
// read-only for consumers; it is mutated only by the login/logout flows and
// by the transport's authorization-failure hook.
package session

import "sync"

// State is the tri-state session value. StateUnknown is the initial state
// before the first verification round-trip completes and must never be
// treated as authenticated.
type State string

const (
	StateUnknown         State = "unknown"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// Manager holds the current State and the one-shot invalidation guard.
//
// Multiple requests can fail with an authorization error concurrently; the
// invalidation side effects (credential clear, redirect to login) must run
// exactly once. Invalidate reports whether the caller won that race. The
// guard is re-armed only by a subsequent successful login.
type Manager struct {
	mu           sync.Mutex
	state        State
	invalidated  bool
	verified     bool
	onInvalidate func()
}

func NewManager() *Manager {
	return &Manager{state: StateUnknown}
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// OnInvalidate registers the hook fired exactly once per invalidation,
// typically a redirect to the login entry point.
func (m *Manager) OnInvalidate(fn func()) {
	m.mu.Lock()
	m.onInvalidate = fn
	m.mu.Unlock()
}

// SetAuthenticated transitions to StateAuthenticated and re-arms the
// one-shot invalidation guard. Called only after a successful login or
// verification.
func (m *Manager) SetAuthenticated() {
	m.mu.Lock()
	m.state = StateAuthenticated
	m.invalidated = false
	m.mu.Unlock()
}

// SetUnauthenticated transitions to StateUnauthenticated without firing the
// invalidation hook. Used by the logout flow, which handles its own
// navigation.
func (m *Manager) SetUnauthenticated() {
	m.mu.Lock()
	m.state = StateUnauthenticated
	m.mu.Unlock()
}

// Invalidate transitions to StateUnauthenticated in response to an
// authorization failure. The caller that wins the one-shot race runs
// cleanup (if non-nil) and then the invalidation hook, in that order, so
// the credential is already gone by the time navigation happens. It
// returns true only for the first call since the last successful login;
// concurrent or repeated failures return false and have no effect.
func (m *Manager) Invalidate(cleanup func()) bool {
	m.mu.Lock()
	if m.invalidated || m.state == StateUnauthenticated {
		m.mu.Unlock()
		return false
	}
	m.invalidated = true
	m.state = StateUnauthenticated
	fn := m.onInvalidate
	m.mu.Unlock()

	if cleanup != nil {
		cleanup()
	}
	if fn != nil {
		fn()
	}
	return true
}

// MarkVerified records that the once-per-run verification round-trip has
// completed, so repeated navigation does not re-verify.
func (m *Manager) MarkVerified() {
	m.mu.Lock()
	m.verified = true
	m.mu.Unlock()
}

// Verified reports whether the verification round-trip already ran.
func (m *Manager) Verified() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verified
}
