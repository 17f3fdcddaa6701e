package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paharpur/siteadmin/internal/common"
	"github.com/paharpur/siteadmin/internal/dbx"
	"github.com/paharpur/siteadmin/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetSection(ctx context.Context, name string) (*models.Section, error) {
	query :=
		`SELECT name, payload, updated_at FROM sections
		 WHERE name = $1
		 `

	s := &models.Section{}
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, name).Scan(&s.Name, &payload, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	s.Payload = json.RawMessage(payload)
	return s, nil
}

func (r *PostgresRepository) UpsertSection(ctx context.Context, name string, payload json.RawMessage) error {
	query :=
		`INSERT INTO sections (name, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET payload = $2, updated_at = now()
		 `

	if _, err := r.db.ExecContext(ctx, query, name, []byte(payload)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListInitiatives(ctx context.Context) ([]models.Initiative, error) {
	query :=
		`SELECT id, title, description, image_url, created_at FROM initiatives
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]models.Initiative, 0)
	for rows.Next() {
		var in models.Initiative
		if err := rows.Scan(&in.ID, &in.Title, &in.Description, &in.ImageURL, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) CreateInitiative(ctx context.Context, in *models.Initiative) error {
	query :=
		`INSERT INTO initiatives (id, title, description, image_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, in.ID, in.Title, in.Description, in.ImageURL).Scan(&in.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateInitiative(ctx context.Context, in *models.Initiative) error {
	query :=
		`UPDATE initiatives
		 SET title = $2, description = $3, image_url = $4
		 WHERE id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, in.ID, in.Title, in.Description, in.ImageURL).Scan(&in.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteInitiative(ctx context.Context, id string) error {
	query := `DELETE FROM initiatives WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
