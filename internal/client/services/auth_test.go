package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paharpur/siteadmin/internal/client/api"
	"github.com/paharpur/siteadmin/internal/client/models"
	"github.com/paharpur/siteadmin/internal/client/session"
	"github.com/paharpur/siteadmin/internal/client/store"
	"github.com/paharpur/siteadmin/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fakes ----

// fakeClient implements api.Client for AuthService unit tests.
type fakeClient struct {
	LoginToken string
	LoginUser  *models.UserProfile
	LoginErr   error
	LoginCalls atomic.Int32
	// LoginGate, when non-nil, blocks Login until the channel is closed.
	LoginGate    chan struct{}
	LoginEntered chan struct{}

	RegisterErr   error
	RegisterCalls atomic.Int32

	VerifyUser *models.UserProfile
	VerifyErr  error

	LogoutErr    error
	LogoutTokens chan string

	AdminList []models.UserProfile
	AdminsErr error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	f.LoginCalls.Add(1)
	if f.LoginEntered != nil {
		close(f.LoginEntered)
	}
	if f.LoginGate != nil {
		<-f.LoginGate
	}
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) error {
	f.RegisterCalls.Add(1)
	return f.RegisterErr
}

func (f *fakeClient) Verify(ctx context.Context) (*models.UserProfile, error) {
	return f.VerifyUser, f.VerifyErr
}

func (f *fakeClient) Logout(ctx context.Context, token string) error {
	if f.LogoutTokens != nil {
		f.LogoutTokens <- token
	}
	return f.LogoutErr
}

func (f *fakeClient) Admins(ctx context.Context) ([]models.UserProfile, error) {
	return f.AdminList, f.AdminsErr
}

func (f *fakeClient) Header(ctx context.Context) (*models.Header, error) { return nil, nil }
func (f *fakeClient) UpdateHeader(ctx context.Context, h *models.Header) error { return nil }
func (f *fakeClient) Banner(ctx context.Context) (*models.Banner, error) { return nil, nil }
func (f *fakeClient) CreateBanner(ctx context.Context, b *models.Banner) error { return nil }
func (f *fakeClient) HeroText(ctx context.Context) (*models.HeroText, error) { return nil, nil }
func (f *fakeClient) UpdateHeroText(ctx context.Context, h *models.HeroText) error {
	return nil
}
func (f *fakeClient) Footer(ctx context.Context) (*models.Footer, error) { return nil, nil }
func (f *fakeClient) UpdateFooter(ctx context.Context, fo *models.Footer) error { return nil }
func (f *fakeClient) Initiatives(ctx context.Context) ([]models.Initiative, error) {
	return nil, nil
}
func (f *fakeClient) CreateInitiative(ctx context.Context, in *models.Initiative) error { return nil }
func (f *fakeClient) UpdateInitiative(ctx context.Context, id string, in *models.Initiative) error {
	return nil
}
func (f *fakeClient) DeleteInitiative(ctx context.Context, id string) error { return nil }
func (f *fakeClient) Enquiries(ctx context.Context) ([]models.Enquiry, error) {
	return nil, nil
}
func (f *fakeClient) UpdateEnquiryStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeClient) DeleteEnquiry(ctx context.Context, id string) error { return nil }
func (f *fakeClient) PresignUpload(ctx context.Context, filename string) (string, string, error) {
	return "", "", nil
}

// countingStore wraps a Store and counts Save calls.
type countingStore struct {
	store.Store
	saves atomic.Int32
}

func (c *countingStore) Save(token string, profile *models.UserProfile) error {
	c.saves.Add(1)
	return c.Store.Save(token, profile)
}

func newTestAuth(t *testing.T, client api.Client) (AuthService, *countingStore, *session.Manager) {
	t.Helper()
	st := &countingStore{Store: store.NewFileStore(filepath.Join(t.TempDir(), "session.json"))}
	sess := session.NewManager()
	return NewAuthService(client, st, sess, discardLogger()), st, sess
}

// ---- tests ----

func TestLogin_SavesSessionAndAuthenticates(t *testing.T) {
	fc := &fakeClient{LoginToken: "T1", LoginUser: &models.UserProfile{ID: 1, Username: "admin", Role: "admin"}}
	auth, st, sess := newTestAuth(t, fc)

	require.NoError(t, auth.Login(context.Background(), "a@b.com", "Passw0rd!"))

	token, profile, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, "T1", token)
	require.Equal(t, int64(1), profile.ID)
	require.Equal(t, session.StateAuthenticated, sess.State())
}

func TestLogin_EmptyInputRejectedBeforeNetwork(t *testing.T) {
	fc := &fakeClient{}
	auth, _, _ := newTestAuth(t, fc)

	require.ErrorIs(t, auth.Login(context.Background(), "", "secret"), ErrValidation)
	require.ErrorIs(t, auth.Login(context.Background(), "a@b.com", ""), ErrValidation)
	require.Equal(t, int32(0), fc.LoginCalls.Load())
}

func TestLogin_FailureDoesNotTouchStore(t *testing.T) {
	fc := &fakeClient{LoginErr: api.ErrInvalidCredentials}
	auth, st, sess := newTestAuth(t, fc)

	err := auth.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, api.ErrInvalidCredentials)

	require.Equal(t, int32(0), st.saves.Load())
	require.Equal(t, session.StateUnknown, sess.State())
}

func TestLogin_DoubleSubmitIsNoOp(t *testing.T) {
	fc := &fakeClient{
		LoginToken:   "T1",
		LoginUser:    &models.UserProfile{ID: 1},
		LoginGate:    make(chan struct{}),
		LoginEntered: make(chan struct{}),
	}
	auth, st, _ := newTestAuth(t, fc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, auth.Login(context.Background(), "a@b.com", "Passw0rd!"))
	}()

	<-fc.LoginEntered
	// Second submit while the first is pending: must not send a second
	// request or double-write the store.
	require.NoError(t, auth.Login(context.Background(), "a@b.com", "Passw0rd!"))

	close(fc.LoginGate)
	wg.Wait()

	require.Equal(t, int32(1), fc.LoginCalls.Load())
	require.Equal(t, int32(1), st.saves.Load())
}

func TestLoginLogoutLogin_ReproducesFreshState(t *testing.T) {
	fc := &fakeClient{LoginToken: "T1", LoginUser: &models.UserProfile{ID: 1, Role: "admin"}}
	auth, st, sess := newTestAuth(t, fc)

	require.NoError(t, auth.Login(context.Background(), "a@b.com", "Passw0rd!"))
	require.NoError(t, auth.Logout(context.Background()))

	token, profile, err := st.Load()
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, profile)
	require.Equal(t, session.StateUnauthenticated, sess.State())

	require.NoError(t, auth.Login(context.Background(), "a@b.com", "Passw0rd!"))

	token, profile, err = st.Load()
	require.NoError(t, err)
	require.Equal(t, "T1", token)
	require.Equal(t, int64(1), profile.ID)
	require.Equal(t, session.StateAuthenticated, sess.State())
}

func TestVerify_NoCredentialSkipsNetwork(t *testing.T) {
	fc := &fakeClient{VerifyErr: errors.New("must not be called")}
	auth, _, sess := newTestAuth(t, fc)

	state, err := auth.Verify(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.StateUnauthenticated, state)
	require.Equal(t, session.StateUnauthenticated, sess.State())
}

func TestVerify_TransportErrorLeavesStateUntouched(t *testing.T) {
	fc := &fakeClient{VerifyErr: api.ErrUnavailable}
	auth, st, sess := newTestAuth(t, fc)
	require.NoError(t, st.Save("T1", &models.UserProfile{ID: 1}))

	_, err := auth.Verify(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)

	// A network outage is not a logout: the credential survives and the
	// state stays whatever it was before the call.
	token, _, loadErr := st.Load()
	require.NoError(t, loadErr)
	require.Equal(t, "T1", token)
	require.Equal(t, session.StateUnknown, sess.State())
	require.False(t, sess.Verified())
}

func TestVerify_SuccessRefreshesProfileAndCaches(t *testing.T) {
	fc := &fakeClient{VerifyUser: &models.UserProfile{ID: 1, Username: "renamed", Role: "admin"}}
	auth, st, sess := newTestAuth(t, fc)
	require.NoError(t, st.Save("T1", &models.UserProfile{ID: 1, Username: "old"}))

	state, err := auth.Verify(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.StateAuthenticated, state)

	_, profile, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, "renamed", profile.Username)

	// The verified result is cached for the rest of the run.
	fc.VerifyErr = errors.New("must not be called again")
	state, err = auth.Verify(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.StateAuthenticated, state)
	require.Equal(t, session.StateAuthenticated, sess.State())
}

func TestVerify_UnauthorizedReportsUnauthenticated(t *testing.T) {
	fc := &fakeClient{VerifyErr: api.ErrUnauthorized}
	auth, st, _ := newTestAuth(t, fc)
	require.NoError(t, st.Save("T1", &models.UserProfile{ID: 1}))

	state, err := auth.Verify(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.StateUnauthenticated, state)
}

func TestLogout_ClearsLocallyBeforeBackendCall(t *testing.T) {
	fc := &fakeClient{LogoutErr: errors.New("backend down"), LogoutTokens: make(chan string, 1)}
	auth, st, sess := newTestAuth(t, fc)
	require.NoError(t, st.Save("T1", &models.UserProfile{ID: 1}))
	sess.SetAuthenticated()

	require.NoError(t, auth.Logout(context.Background()))

	// Cleared immediately, regardless of what the backend says later.
	token, profile, err := st.Load()
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, profile)
	require.Equal(t, session.StateUnauthenticated, sess.State())

	// The best-effort notification still carries the captured token.
	select {
	case got := <-fc.LogoutTokens:
		require.Equal(t, "T1", got)
	case <-time.After(2 * time.Second):
		t.Fatal("backend logout notification was never attempted")
	}
}

func TestLogout_WithoutSessionSkipsBackend(t *testing.T) {
	fc := &fakeClient{LogoutTokens: make(chan string, 1)}
	auth, _, sess := newTestAuth(t, fc)

	require.NoError(t, auth.Logout(context.Background()))
	require.Equal(t, session.StateUnauthenticated, sess.State())

	select {
	case <-fc.LogoutTokens:
		t.Fatal("backend must not be notified when no session exists")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRegister_PasswordPolicy(t *testing.T) {
	fc := &fakeClient{}
	auth, _, _ := newTestAuth(t, fc)
	ctx := context.Background()

	require.ErrorIs(t, auth.Register(ctx, "admin", "a@b.com", "short"), ErrValidation)
	require.ErrorIs(t, auth.Register(ctx, "admin", "a@b.com", "alllowercase1!"), ErrValidation)
	require.ErrorIs(t, auth.Register(ctx, "admin", "a@b.com", "ALLUPPERCASE1!"), ErrValidation)
	require.ErrorIs(t, auth.Register(ctx, "admin", "a@b.com", "NoDigits!!"), ErrValidation)
	require.ErrorIs(t, auth.Register(ctx, "admin", "a@b.com", "NoSpecial99"), ErrValidation)
	require.Equal(t, int32(0), fc.RegisterCalls.Load())

	require.NoError(t, auth.Register(ctx, "admin", "a@b.com", "Passw0rd!"))
	require.Equal(t, int32(1), fc.RegisterCalls.Load())
}
