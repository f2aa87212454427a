// Package translation implements the Translation edge repository using PostgreSQL.
package translation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/alarino/alarino-backend/internal/adapter/postgres"
	"github.com/alarino/alarino-backend/internal/domain"
)

// Repo provides translation edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	sb sq.StatementBuilderType
}

// New creates a new translation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateIfAbsent inserts a directed translation edge unless the exact
// (source, target) pair already exists. Idempotent.
func (r *Repo) CreateIfAbsent(ctx context.Context, sourceWordID, targetWordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	const insertSQL = `
INSERT INTO translations (t_id, source_word_id, target_word_id)
VALUES ($1, $2, $3)
ON CONFLICT (source_word_id, target_word_id) DO NOTHING`

	if _, err := querier.Exec(ctx, insertSQL, uuid.New(), sourceWordID, targetWordID); err != nil {
		return postgres.MapError(err, "translation", sourceWordID.String())
	}

	return nil
}

// ListSourceWords returns all source-language words that translate into
// the given target word, ordered by creation time. Used by the daily-word
// selector to pair a Yoruba word with its English side.
func (r *Repo) ListSourceWords(ctx context.Context, targetWordID uuid.UUID, sourceLang domain.Language) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := r.sb.
		Select("w.w_id", "w.language", "w.text", "w.part_of_speech", "w.created_at").
		From("translations t").
		Join("words w ON t.source_word_id = w.w_id").
		Where(sq.Eq{"t.target_word_id": targetWordID, "w.language": sourceLang.String()}).
		OrderBy("t.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list source words query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list source words: %w", err)
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var (
			w    domain.Word
			lang string
			pos  pgtype.Text
		)
		if err := rows.Scan(&w.ID, &lang, &w.Text, &pos, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("list source words: %w", err)
		}
		w.Language = domain.Language(lang)
		if pos.Valid {
			w.PartOfSpeech = &pos.String
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list source words: %w", err)
	}

	if words == nil {
		words = []domain.Word{}
	}

	return words, nil
}
