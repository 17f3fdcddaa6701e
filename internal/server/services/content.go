package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/paharpur/siteadmin/internal/common"
	"github.com/paharpur/siteadmin/internal/server/models"
	"github.com/paharpur/siteadmin/internal/server/repositories/repomanager"
)

type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContentService(db *sql.DB, repomanager repomanager.RepositoryManager) *ContentService {
	return &ContentService{
		db:          db,
		repomanager: repomanager,
	}
}

// GetSection returns the stored document for a known section name. An
// unknown name is a client error, a known-but-unset section returns
// common.ErrorNotFound.
func (s *ContentService) GetSection(ctx context.Context, name string) (*models.Section, error) {
	if !validSection(name) {
		return nil, fmt.Errorf("unknown section %q", name)
	}
	return s.repomanager.Content(s.db).GetSection(ctx, name)
}

// UpsertSection validates that the payload is a JSON object and stores it
// verbatim as the new section document.
func (s *ContentService) UpsertSection(ctx context.Context, name string, payload json.RawMessage) error {
	if !validSection(name) {
		return fmt.Errorf("unknown section %q", name)
	}

	var probe map[string]any
	if err := json.Unmarshal(payload, &probe); err != nil {
		return fmt.Errorf("payload must be a JSON object: %w", err)
	}

	return s.repomanager.Content(s.db).UpsertSection(ctx, name, payload)
}

func (s *ContentService) ListInitiatives(ctx context.Context) ([]models.Initiative, error) {
	return s.repomanager.Content(s.db).ListInitiatives(ctx)
}

func (s *ContentService) CreateInitiative(ctx context.Context, title, description, imageURL string) (*models.Initiative, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	in := &models.Initiative{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.repomanager.Content(s.db).CreateInitiative(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

// UpdateInitiative replaces the card fields of an existing initiative.
func (s *ContentService) UpdateInitiative(ctx context.Context, id, title, description, imageURL string) (*models.Initiative, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	in := &models.Initiative{
		ID:          id,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.repomanager.Content(s.db).UpdateInitiative(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *ContentService) DeleteInitiative(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return s.repomanager.Content(s.db).DeleteInitiative(ctx, id)
}

func validSection(name string) bool {
	switch name {
	case models.SectionHeader, models.SectionBanner, models.SectionHeroText, models.SectionFooter:
		return true
	}
	return false
}
