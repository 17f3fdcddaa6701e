package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/paharpur/siteadmin/internal/client/api"
	"github.com/paharpur/siteadmin/internal/client/models"
)

// ContentService wraps the CRUD surface of the site backend for the
// dashboard commands. It adds only input validation; the session handling
// lives entirely in the transport.
type ContentService struct {
	client api.Client
}

func NewContentService(client api.Client) *ContentService {
	return &ContentService{client: client}
}

func (s *ContentService) Header(ctx context.Context) (*models.Header, error) {
	return s.client.Header(ctx)
}

func (s *ContentService) UpdateHeader(ctx context.Context, h *models.Header) error {
	return s.client.UpdateHeader(ctx, h)
}

func (s *ContentService) Banner(ctx context.Context) (*models.Banner, error) {
	return s.client.Banner(ctx)
}

func (s *ContentService) CreateBanner(ctx context.Context, b *models.Banner) error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: banner title is required", ErrValidation)
	}
	return s.client.CreateBanner(ctx, b)
}

func (s *ContentService) HeroText(ctx context.Context) (*models.HeroText, error) {
	return s.client.HeroText(ctx)
}

func (s *ContentService) UpdateHeroText(ctx context.Context, h *models.HeroText) error {
	if strings.TrimSpace(h.Heading) == "" {
		return fmt.Errorf("%w: hero heading is required", ErrValidation)
	}
	return s.client.UpdateHeroText(ctx, h)
}

func (s *ContentService) Footer(ctx context.Context) (*models.Footer, error) {
	return s.client.Footer(ctx)
}

func (s *ContentService) UpdateFooter(ctx context.Context, f *models.Footer) error {
	return s.client.UpdateFooter(ctx, f)
}

func (s *ContentService) Initiatives(ctx context.Context) ([]models.Initiative, error) {
	return s.client.Initiatives(ctx)
}

func (s *ContentService) CreateInitiative(ctx context.Context, in *models.Initiative) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: initiative title is required", ErrValidation)
	}
	return s.client.CreateInitiative(ctx, in)
}

func (s *ContentService) UpdateInitiative(ctx context.Context, id string, in *models.Initiative) error {
	if id == "" {
		return fmt.Errorf("%w: initiative id is required", ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: initiative title is required", ErrValidation)
	}
	return s.client.UpdateInitiative(ctx, id, in)
}

func (s *ContentService) DeleteInitiative(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: initiative id is required", ErrValidation)
	}
	return s.client.DeleteInitiative(ctx, id)
}

func (s *ContentService) Enquiries(ctx context.Context) ([]models.Enquiry, error) {
	return s.client.Enquiries(ctx)
}

func (s *ContentService) UpdateEnquiryStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.EnquiryStatusNew, models.EnquiryStatusRead, models.EnquiryStatusResolved:
	default:
		return fmt.Errorf("%w: unknown enquiry status %q", ErrValidation, status)
	}
	return s.client.UpdateEnquiryStatus(ctx, id, status)
}

func (s *ContentService) DeleteEnquiry(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: enquiry id is required", ErrValidation)
	}
	return s.client.DeleteEnquiry(ctx, id)
}

// PresignUpload returns a storage key and a presigned PUT URL for an image
// asset.
func (s *ContentService) PresignUpload(ctx context.Context, filename string) (string, string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", "", fmt.Errorf("%w: filename is required", ErrValidation)
	}
	return s.client.PresignUpload(ctx, filename)
}
