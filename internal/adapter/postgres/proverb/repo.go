// Package proverb implements the Proverb repository using PostgreSQL.
package proverb

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/alarino/alarino-backend/internal/adapter/postgres"
	"github.com/alarino/alarino-backend/internal/domain"
)

// Repo provides proverb persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new proverb repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const randomSQL = `
SELECT p_id, yoruba_text, english_text, created_at
FROM proverbs
ORDER BY random()
LIMIT 1`

// Random returns a uniformly random proverb.
// Returns domain.ErrNotFound when the table is empty.
func (r *Repo) Random(ctx context.Context) (*domain.Proverb, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var p domain.Proverb
	err := querier.QueryRow(ctx, randomSQL).Scan(&p.ID, &p.YorubaText, &p.EnglishText, &p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "proverb", "random")
	}

	return &p, nil
}

const createSQL = `
INSERT INTO proverbs (p_id, yoruba_text, english_text)
VALUES ($1, $2, $3)
ON CONFLICT (yoruba_text, english_text) DO NOTHING`

// CreateIfAbsent inserts a proverb pair unless it already exists. Idempotent.
func (r *Repo) CreateIfAbsent(ctx context.Context, yorubaText, englishText string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, createSQL, uuid.New(), yorubaText, englishText); err != nil {
		return postgres.MapError(err, "proverb", yorubaText)
	}

	return nil
}
