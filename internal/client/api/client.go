// Package api is the REST client for the site backend. It owns the
// request/response pipeline: the transport attaches the session credential
// to every outgoing call and reacts to authorization failures, and the
// response mapping translates HTTP statuses into the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paharpur/siteadmin/internal/client/models"
	"github.com/paharpur/siteadmin/internal/client/session"
	"github.com/paharpur/siteadmin/internal/client/store"
	"github.com/paharpur/siteadmin/internal/logging"
)

// Client is the backend surface the CLI depends on. The concrete
// implementation is HTTPClient; tests provide fakes.
type Client interface {
	Login(ctx context.Context, email, password string) (string, *models.UserProfile, error)
	Register(ctx context.Context, username, email, password string) error
	Verify(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context, token string) error
	Admins(ctx context.Context) ([]models.UserProfile, error)

	Header(ctx context.Context) (*models.Header, error)
	UpdateHeader(ctx context.Context, h *models.Header) error
	Banner(ctx context.Context) (*models.Banner, error)
	CreateBanner(ctx context.Context, b *models.Banner) error
	HeroText(ctx context.Context) (*models.HeroText, error)
	UpdateHeroText(ctx context.Context, h *models.HeroText) error
	Footer(ctx context.Context) (*models.Footer, error)
	UpdateFooter(ctx context.Context, f *models.Footer) error

	Initiatives(ctx context.Context) ([]models.Initiative, error)
	CreateInitiative(ctx context.Context, in *models.Initiative) error
	UpdateInitiative(ctx context.Context, id string, in *models.Initiative) error
	DeleteInitiative(ctx context.Context, id string) error

	Enquiries(ctx context.Context) ([]models.Enquiry, error)
	UpdateEnquiryStatus(ctx context.Context, id, status string) error
	DeleteEnquiry(ctx context.Context, id string) error

	PresignUpload(ctx context.Context, filename string) (string, string, error)
}

// HTTPClient talks JSON over HTTP to the site backend through the
// credential-attaching transport.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

func NewHTTPClient(baseURL string, st store.Store, sess *session.Manager, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With("module", "api_client"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				base:    http.DefaultTransport,
				store:   st,
				session: sess,
				logger:  logger.With("module", "auth_transport"),
			},
		},
	}
}

// envelope is the backend's JSON failure/success wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    *models.UserProfile `json:"user"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyResponse struct {
	Success bool                `json:"success"`
	User    *models.UserProfile `json:"user"`
}

type adminsResponse struct {
	Success bool                 `json:"success"`
	Admins  []models.UserProfile `json:"admins"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		// The login endpoint answers 401 for a bad email/password pair;
		// that is a user-facing rejection, not a session expiry.
		if errors.Is(err, ErrUnauthorized) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		return "", nil, fmt.Errorf("login: malformed response")
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", registerRequest{Username: username, Email: email, Password: password}, nil)
}

func (c *HTTPClient) Verify(ctx context.Context) (*models.UserProfile, error) {
	var resp verifyResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/verify", "", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("verify: malformed response")
	}
	return resp.User, nil
}

// Logout notifies the backend that the session is over. The token is passed
// explicitly because the local store is already cleared by the time this
// call is made.
func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

func (c *HTTPClient) Admins(ctx context.Context) ([]models.UserProfile, error) {
	var resp adminsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/admins", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Admins, nil
}

func (c *HTTPClient) Header(ctx context.Context) (*models.Header, error) {
	var h models.Header
	if err := c.doJSON(ctx, http.MethodGet, "/api/header", "", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *HTTPClient) UpdateHeader(ctx context.Context, h *models.Header) error {
	return c.doJSON(ctx, http.MethodPost, "/api/header/update", "", h, nil)
}

func (c *HTTPClient) Banner(ctx context.Context) (*models.Banner, error) {
	var b models.Banner
	if err := c.doJSON(ctx, http.MethodGet, "/api/banner", "", nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) CreateBanner(ctx context.Context, b *models.Banner) error {
	return c.doJSON(ctx, http.MethodPost, "/api/banner/create", "", b, nil)
}

func (c *HTTPClient) HeroText(ctx context.Context) (*models.HeroText, error) {
	var h models.HeroText
	if err := c.doJSON(ctx, http.MethodGet, "/api/hero-text", "", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *HTTPClient) UpdateHeroText(ctx context.Context, h *models.HeroText) error {
	return c.doJSON(ctx, http.MethodPost, "/api/hero-text/update", "", h, nil)
}

func (c *HTTPClient) Footer(ctx context.Context) (*models.Footer, error) {
	var f models.Footer
	if err := c.doJSON(ctx, http.MethodGet, "/api/footer", "", nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) UpdateFooter(ctx context.Context, f *models.Footer) error {
	return c.doJSON(ctx, http.MethodPost, "/api/footer/update", "", f, nil)
}

func (c *HTTPClient) Initiatives(ctx context.Context) ([]models.Initiative, error) {
	var list []models.Initiative
	if err := c.doJSON(ctx, http.MethodGet, "/api/initiatives", "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateInitiative(ctx context.Context, in *models.Initiative) error {
	return c.doJSON(ctx, http.MethodPost, "/api/initiatives", "", in, nil)
}

func (c *HTTPClient) UpdateInitiative(ctx context.Context, id string, in *models.Initiative) error {
	return c.doJSON(ctx, http.MethodPut, "/api/initiatives/"+url.PathEscape(id), "", in, nil)
}

func (c *HTTPClient) DeleteInitiative(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/initiatives/"+url.PathEscape(id), "", nil, nil)
}

func (c *HTTPClient) Enquiries(ctx context.Context) ([]models.Enquiry, error) {
	var list []models.Enquiry
	if err := c.doJSON(ctx, http.MethodGet, "/api/enquiries", "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) UpdateEnquiryStatus(ctx context.Context, id, status string) error {
	return c.doJSON(ctx, http.MethodPatch, "/api/enquiries/"+url.PathEscape(id)+"/status", "", statusRequest{Status: status}, nil)
}

func (c *HTTPClient) DeleteEnquiry(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/enquiries/"+url.PathEscape(id), "", nil, nil)
}

// PresignUpload asks the backend for a presigned PUT URL for an image
// asset. Returns the storage key and the URL.
func (c *HTTPClient) PresignUpload(ctx context.Context, filename string) (string, string, error) {
	var resp presignResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/uploads/presign?filename="+url.QueryEscape(filename), "", nil, &resp)
	if err != nil {
		return "", "", err
	}
	return resp.Key, resp.URL, nil
}

// doJSON performs one round-trip: marshals body (if any), sends the
// request, maps the response status onto the error taxonomy and decodes
// the payload into out (if non-nil). An explicit bearer token, when given,
// overrides the stored credential for this single call.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response was received: retryable, never a logout trigger.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.mapStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapStatus translates failure statuses into sentinel errors. It drains the
// body for the backend message where one is expected.
func (c *HTTPClient) mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		var env envelope
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&env)
		return &ServerError{Status: resp.StatusCode, Message: env.Message}
	}
}
