package content

import (
	"context"
	"encoding/json"

	"github.com/paharpur/siteadmin/internal/server/models"
)

type Repository interface {
	GetSection(ctx context.Context, name string) (*models.Section, error)
	UpsertSection(ctx context.Context, name string, payload json.RawMessage) error
	ListInitiatives(ctx context.Context) ([]models.Initiative, error)
	CreateInitiative(ctx context.Context, in *models.Initiative) error
	UpdateInitiative(ctx context.Context, in *models.Initiative) error
	DeleteInitiative(ctx context.Context, id string) error
}
