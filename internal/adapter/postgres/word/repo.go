// Package word implements the Word repository using PostgreSQL.
// Queries are built with squirrel; text is expected to be normalized
// (domain.NormalizeText) before it reaches this layer.
package word

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/alarino/alarino-backend/internal/adapter/postgres"
	"github.com/alarino/alarino-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	sb sq.StatementBuilderType
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const wordColumns = "w_id, language, text, part_of_speech, created_at"

// GetByText returns the word with the given (language, text) key.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByText(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := r.sb.
		Select("w_id", "language", "text", "part_of_speech", "created_at").
		From("words").
		Where(sq.Eq{"language": lang.String(), "text": text}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word query: %w", err)
	}

	w, err := scanWordRow(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", text)
	}

	return &w, nil
}

// CreateIfAbsent inserts a word if no (language, text) row exists and
// returns the stored row either way. When the word already exists with a
// NULL part of speech and a part of speech is supplied, it is backfilled;
// stored text is never mutated.
func (r *Repo) CreateIfAbsent(ctx context.Context, lang domain.Language, text string, partOfSpeech *string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	const insertSQL = `
INSERT INTO words (w_id, language, text, part_of_speech)
VALUES ($1, $2, $3, $4)
ON CONFLICT (language, text) DO NOTHING
RETURNING ` + wordColumns

	w, err := scanWordRow(querier.QueryRow(ctx, insertSQL, uuid.New(), lang.String(), text, partOfSpeech))
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "word", text)
	}

	// Conflict: the word already exists. Backfill POS if we have one.
	if partOfSpeech != nil {
		const backfillSQL = `
UPDATE words SET part_of_speech = $1
WHERE language = $2 AND text = $3 AND part_of_speech IS NULL`
		if _, err := querier.Exec(ctx, backfillSQL, *partOfSpeech, lang.String(), text); err != nil {
			return nil, postgres.MapError(err, "word", text)
		}
	}

	return r.GetByText(ctx, lang, text)
}

// ListTranslations returns all target-language words linked from the
// given source word by a translation edge, ordered by text.
func (r *Repo) ListTranslations(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := r.sb.
		Select("w.w_id", "w.language", "w.text", "w.part_of_speech", "w.created_at").
		From("translations t").
		Join("words w ON t.target_word_id = w.w_id").
		Where(sq.Eq{"t.source_word_id": sourceWordID, "w.language": targetLang.String()}).
		OrderBy("w.text").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list translations query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	return words, nil
}

// RandomSingleToken returns a uniformly random single-token word (no
// internal space) in the given language. With excludeUsed, words that
// already appear in daily_words are not eligible.
// Returns domain.ErrNotFound when no candidate remains.
func (r *Repo) RandomSingleToken(ctx context.Context, lang domain.Language, excludeUsed bool) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	b := r.sb.
		Select("w_id", "language", "text", "part_of_speech", "created_at").
		From("words").
		Where(sq.Eq{"language": lang.String()}).
		Where("position(' ' IN text) = 0")
	if excludeUsed {
		b = b.Where("w_id NOT IN (SELECT word_id FROM daily_words)")
	}
	query, args, err := b.OrderBy("random()").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build random word query: %w", err)
	}

	w, err := scanWordRow(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", lang.String())
	}

	return &w, nil
}

// ListWithTranslations returns the distinct normalized texts of all words
// in the given language that are the source of at least one translation
// edge. Used by the sitemap generator.
func (r *Repo) ListWithTranslations(ctx context.Context, lang domain.Language) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := r.sb.
		Select("DISTINCT w.text").
		From("words w").
		Join("translations t ON t.source_word_id = w.w_id").
		Where(sq.Eq{"w.language": lang.String()}).
		OrderBy("w.text").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list with translations query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words with translations: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("list words with translations: %w", err)
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words with translations: %w", err)
	}

	return texts, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWordRow(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if words == nil {
		words = []domain.Word{}
	}

	return words, nil
}

func scanWordRow(row pgx.Row) (domain.Word, error) {
	var (
		w    domain.Word
		lang string
		pos  pgtype.Text
	)

	if err := row.Scan(&w.ID, &lang, &w.Text, &pos, &w.CreatedAt); err != nil {
		return domain.Word{}, err
	}

	w.Language = domain.Language(lang)
	if pos.Valid {
		w.PartOfSpeech = &pos.String
	}

	return w, nil
}
