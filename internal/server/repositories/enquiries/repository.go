package enquiries

import (
	"context"

	"github.com/paharpur/siteadmin/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Enquiry, error)
	Create(ctx context.Context, e *models.Enquiry) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
