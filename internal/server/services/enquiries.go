package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/paharpur/siteadmin/internal/common"
	"github.com/paharpur/siteadmin/internal/server/models"
	"github.com/paharpur/siteadmin/internal/server/repositories/repomanager"
)

type EnquiryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEnquiryService(db *sql.DB, repomanager repomanager.RepositoryManager) *EnquiryService {
	return &EnquiryService{
		db:          db,
		repomanager: repomanager,
	}
}

func (s *EnquiryService) List(ctx context.Context) ([]models.Enquiry, error) {
	return s.repomanager.Enquiries(s.db).List(ctx)
}

// Create stores a contact-form submission with status "new". This is the
// only unauthenticated write on the server.
func (s *EnquiryService) Create(ctx context.Context, name, email, phone, message string) (*models.Enquiry, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("name, email and message are required")
	}

	e := &models.Enquiry{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
		Status:  models.EnquiryStatusNew,
	}
	if err := s.repomanager.Enquiries(s.db).Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EnquiryService) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.EnquiryStatusNew, models.EnquiryStatusRead, models.EnquiryStatusResolved:
	default:
		return fmt.Errorf("unknown status %q", status)
	}
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return s.repomanager.Enquiries(s.db).UpdateStatus(ctx, id, status)
}

func (s *EnquiryService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return s.repomanager.Enquiries(s.db).Delete(ctx, id)
}
