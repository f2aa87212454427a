// Package dailyword implements the DailyWordRecord repository using PostgreSQL.
package dailyword

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/alarino/alarino-backend/internal/adapter/postgres"
	"github.com/alarino/alarino-backend/internal/domain"
)

// Repo provides daily-word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily-word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByDateSQL = `
SELECT yo.text, en.text
FROM daily_words dw
JOIN words yo ON dw.word_id = yo.w_id
JOIN words en ON dw.en_word_id = en.w_id
WHERE dw.date = $1`

// GetByDate returns the resolved word pair chosen for the given date.
// Returns domain.ErrNotFound when no record exists for that date.
func (r *Repo) GetByDate(ctx context.Context, date time.Time) (*domain.DailyWordPair, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var pair domain.DailyWordPair
	err := querier.QueryRow(ctx, getByDateSQL, date).Scan(&pair.YorubaWord, &pair.EnglishWord)
	if err != nil {
		return nil, postgres.MapError(err, "daily word", date.Format("2006-01-02"))
	}

	return &pair, nil
}

const createSQL = `
INSERT INTO daily_words (dw_id, word_id, en_word_id, date)
VALUES ($1, $2, $3, $4)`

// Create persists the daily-word choice for a date. The unique date
// constraint is the correctness backstop for concurrent selection:
// a losing writer gets domain.ErrAlreadyExists and must re-read the
// winner's record instead of erroring.
func (r *Repo) Create(ctx context.Context, wordID, enWordID uuid.UUID, date time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, createSQL, uuid.New(), wordID, enWordID, date); err != nil {
		return postgres.MapError(err, "daily word", date.Format("2006-01-02"))
	}

	return nil
}
