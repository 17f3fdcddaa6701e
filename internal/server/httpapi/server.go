// Package httpapi exposes the REST surface of the site backend: auth,
// content sections, initiatives, enquiries and upload presigning.
package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/paharpur/siteadmin/internal/logging"
	sc "github.com/paharpur/siteadmin/internal/server/config"
	"github.com/paharpur/siteadmin/internal/server/models"
	"github.com/paharpur/siteadmin/internal/server/obs"
)

// UserProvider is the account surface the handlers need.
type UserProvider interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// ContentProvider is the site content surface the handlers need.
type ContentProvider interface {
	GetSection(ctx context.Context, name string) (*models.Section, error)
	UpsertSection(ctx context.Context, name string, payload json.RawMessage) error
	ListInitiatives(ctx context.Context) ([]models.Initiative, error)
	CreateInitiative(ctx context.Context, title, description, imageURL string) (*models.Initiative, error)
	UpdateInitiative(ctx context.Context, id, title, description, imageURL string) (*models.Initiative, error)
	DeleteInitiative(ctx context.Context, id string) error
}

// EnquiryProvider is the enquiry triage surface the handlers need.
type EnquiryProvider interface {
	List(ctx context.Context) ([]models.Enquiry, error)
	Create(ctx context.Context, name, email, phone, message string) (*models.Enquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// AssetProvider issues presigned upload URLs.
type AssetProvider interface {
	GetPresignedPutUrl(ctx context.Context, filename string) (string, string, error)
}

type Server struct {
	config    *sc.Config
	logger    logging.Logger
	db        *sql.DB
	users     UserProvider
	content   ContentProvider
	enquiries EnquiryProvider
	assets    AssetProvider
}

// NewServer wires the handler dependencies. The db handle is only used by
// the health probe and may be nil in tests.
func NewServer(cfg *sc.Config, logger logging.Logger, db *sql.DB, users UserProvider, content ContentProvider, enquiries EnquiryProvider, assets AssetProvider) *Server {
	return &Server{
		config:    cfg,
		logger:    logger.With("module", "httpapi"),
		db:        db,
		users:     users,
		content:   content,
		enquiries: enquiries,
		assets:    assets,
	}
}

// Routes builds the full handler tree. Protected routes go through the
// bearer-token middleware; the login endpoint additionally goes through a
// per-IP rate limit.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	login := http.HandlerFunc(s.handleLogin)
	mux.Handle("POST /api/auth/login", s.RateLimitLogin(login))
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.Handle("GET /api/auth/verify", s.RequireAuth(http.HandlerFunc(s.handleVerify)))
	mux.Handle("POST /api/auth/logout", s.RequireAuth(http.HandlerFunc(s.handleLogout)))
	mux.Handle("GET /api/auth/admins", s.RequireAuth(http.HandlerFunc(s.handleListAdmins)))

	// public site reads
	mux.HandleFunc("GET /api/header", s.handleGetSection(models.SectionHeader))
	mux.HandleFunc("GET /api/banner", s.handleGetSection(models.SectionBanner))
	mux.HandleFunc("GET /api/hero-text", s.handleGetSection(models.SectionHeroText))
	mux.HandleFunc("GET /api/footer", s.handleGetSection(models.SectionFooter))
	mux.HandleFunc("GET /api/initiatives", s.handleListInitiatives)
	mux.HandleFunc("POST /api/enquiries", s.handleCreateEnquiry)

	// dashboard writes
	mux.Handle("POST /api/header/update", s.RequireAuth(s.handleUpdateSection(models.SectionHeader)))
	mux.Handle("POST /api/banner/create", s.RequireAuth(s.handleUpdateSection(models.SectionBanner)))
	mux.Handle("POST /api/hero-text/update", s.RequireAuth(s.handleUpdateSection(models.SectionHeroText)))
	mux.Handle("POST /api/footer/update", s.RequireAuth(s.handleUpdateSection(models.SectionFooter)))
	mux.Handle("POST /api/initiatives", s.RequireAuth(http.HandlerFunc(s.handleCreateInitiative)))
	mux.Handle("PUT /api/initiatives/{id}", s.RequireAuth(http.HandlerFunc(s.handleUpdateInitiative)))
	mux.Handle("DELETE /api/initiatives/{id}", s.RequireAuth(http.HandlerFunc(s.handleDeleteInitiative)))
	mux.Handle("GET /api/enquiries", s.RequireAuth(http.HandlerFunc(s.handleListEnquiries)))
	mux.Handle("PATCH /api/enquiries/{id}/status", s.RequireAuth(http.HandlerFunc(s.handleUpdateEnquiryStatus)))
	mux.Handle("DELETE /api/enquiries/{id}", s.RequireAuth(http.HandlerFunc(s.handleDeleteEnquiry)))
	mux.Handle("POST /api/uploads/presign", s.RequireAuth(http.HandlerFunc(s.handlePresignUpload)))

	mux.Handle("GET /metrics", obs.Handler())
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	var h http.Handler = mux
	h = MaxBodyBytes(h, 1<<20)
	h = s.Logging(h)
	h = obs.Instrument(h)
	return h
}

// handleHealthz reports liveness. With a database handle present it also
// pings it, so a lost connection flips the probe to 503.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.EndpointAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.config.EndpointAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
