package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/savthe/prediction-confidence/domain/core"
	"github.com/savthe/prediction-confidence/models"
)

// DistributionRepository persists named distribution configurations in Postgres
type DistributionRepository struct {
	db *sqlx.DB
}

// NewDistributionRepository creates a new distribution repository
func NewDistributionRepository(db *sqlx.DB) *DistributionRepository {
	return &DistributionRepository{db: db}
}

// Schema is the DDL for the distributions table, applied by cmd/migrate.
const Schema = `
CREATE TABLE IF NOT EXISTS distributions (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	mean DOUBLE PRECISION NOT NULL,
	stdev DOUBLE PRECISION NOT NULL CHECK (stdev > 0),
	lower_bound DOUBLE PRECISION NOT NULL,
	upper_bound DOUBLE PRECISION NOT NULL CHECK (upper_bound > lower_bound),
	points INTEGER NOT NULL CHECK (points >= 1),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_distributions_name ON distributions (name);
`

// Create inserts a new distribution row
func (r *DistributionRepository) Create(ctx context.Context, d *models.Distribution) error {
	query := `
		INSERT INTO distributions (id, name, mean, stdev, lower_bound, upper_bound, points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.Mean,
		d.Stdev,
		d.Lower,
		d.Upper,
		d.Points,
		d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert distribution %q: %w", d.Name, err)
	}
	return nil
}

// GetByName fetches a distribution by its unique name
func (r *DistributionRepository) GetByName(ctx context.Context, name string) (*models.Distribution, error) {
	query := `
		SELECT id, name, mean, stdev, lower_bound, upper_bound, points, created_at
		FROM distributions
		WHERE name = $1`

	var d models.Distribution
	if err := r.db.GetContext(ctx, &d, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrDistributionNotFound
		}
		return nil, fmt.Errorf("failed to get distribution %q: %w", name, err)
	}
	return &d, nil
}

// List returns all distributions ordered by creation time
func (r *DistributionRepository) List(ctx context.Context) ([]*models.Distribution, error) {
	query := `
		SELECT id, name, mean, stdev, lower_bound, upper_bound, points, created_at
		FROM distributions
		ORDER BY created_at`

	var out []*models.Distribution
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}
	return out, nil
}

// Delete removes a distribution by name
func (r *DistributionRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM distributions WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete distribution %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrDistributionNotFound
	}
	return nil
}
