// Package missing implements the missing-translation ledger using PostgreSQL.
// The ledger is a usage-frequency signal for curation: one row per
// (text, source, target) key, hit_count bumped on every repeated miss.
package missing

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/alarino/alarino-backend/internal/adapter/postgres"
	"github.com/alarino/alarino-backend/internal/domain"
)

// Repo provides missing-translation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new missing-translation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const recordMissSQL = `
INSERT INTO missing_translations (m_id, text, source_language, target_language, user_ip, user_agent)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (text, source_language, target_language)
DO UPDATE SET hit_count = missing_translations.hit_count + 1`

// RecordMiss upserts a miss record: first miss inserts with hit_count 1,
// every later miss for the same key increments the counter. The single
// ON CONFLICT statement keeps concurrent same-key calls safe: no call
// is lost regardless of interleaving.
func (r *Repo) RecordMiss(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var ip, agent *string
	if meta.IP != "" {
		ip = &meta.IP
	}
	if meta.UserAgent != "" {
		agent = &meta.UserAgent
	}

	_, err := querier.Exec(ctx, recordMissSQL,
		uuid.New(), text, source.String(), target.String(), ip, agent)
	if err != nil {
		return postgres.MapError(err, "missing translation", text)
	}

	return nil
}

const topSQL = `
SELECT m_id, text, source_language, target_language, user_ip, user_agent, hit_count, created_at
FROM missing_translations
ORDER BY hit_count DESC, created_at ASC
LIMIT $1`

// Top returns the most requested missing translations, busiest first.
func (r *Repo) Top(ctx context.Context, limit int) ([]domain.MissingTranslation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, topSQL, limit)
	if err != nil {
		return nil, postgres.MapError(err, "missing translation", "top")
	}
	defer rows.Close()

	var records []domain.MissingTranslation
	for rows.Next() {
		var (
			m         domain.MissingTranslation
			source    string
			target    string
			ip, agent pgtype.Text
		)
		if err := rows.Scan(&m.ID, &m.Text, &source, &target, &ip, &agent, &m.HitCount, &m.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "missing translation", "top")
		}
		m.SourceLanguage = domain.Language(source)
		m.TargetLanguage = domain.Language(target)
		if ip.Valid {
			m.UserIP = &ip.String
		}
		if agent.Valid {
			m.UserAgent = &agent.String
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "missing translation", "top")
	}

	if records == nil {
		records = []domain.MissingTranslation{}
	}

	return records, nil
}
