package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alarino/alarino-backend/internal/domain"
)

// SeedWord inserts a word and returns it.
func SeedWord(t *testing.T, pool *pgxpool.Pool, lang domain.Language, text string) domain.Word {
	t.Helper()
	ctx := context.Background()

	word := domain.Word{
		ID:        uuid.New(),
		Language:  lang,
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (w_id, language, text, created_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (language, text) DO NOTHING`,
		word.ID, word.Language.String(), word.Text, word.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	// The word may already exist from another test; read back the
	// canonical row either way.
	err = pool.QueryRow(ctx,
		`SELECT w_id, created_at FROM words WHERE language = $1 AND text = $2`,
		word.Language.String(), word.Text,
	).Scan(&word.ID, &word.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWord select: %v", err)
	}

	return word
}

// SeedPair inserts an English word, a Yoruba word, and the translation
// edge between them. Returns both words.
func SeedPair(t *testing.T, pool *pgxpool.Pool, english, yoruba string) (domain.Word, domain.Word) {
	t.Helper()
	ctx := context.Background()

	en := SeedWord(t, pool, domain.English, english)
	yo := SeedWord(t, pool, domain.Yoruba, yoruba)

	_, err := pool.Exec(ctx,
		`INSERT INTO translations (t_id, source_word_id, target_word_id) VALUES ($1, $2, $3)
		 ON CONFLICT (source_word_id, target_word_id) DO NOTHING`,
		uuid.New(), en.ID, yo.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPair insert edge: %v", err)
	}

	return en, yo
}

// SeedProverb inserts a proverb pair.
func SeedProverb(t *testing.T, pool *pgxpool.Pool, yorubaText, englishText string) domain.Proverb {
	t.Helper()
	ctx := context.Background()

	p := domain.Proverb{
		ID:          uuid.New(),
		YorubaText:  yorubaText,
		EnglishText: englishText,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO proverbs (p_id, yoruba_text, english_text, created_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (yoruba_text, english_text) DO NOTHING`,
		p.ID, p.YorubaText, p.EnglishText, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProverb insert: %v", err)
	}

	return p
}

// SeedDailyWord records a daily-word choice for the given date.
func SeedDailyWord(t *testing.T, pool *pgxpool.Pool, wordID, enWordID uuid.UUID, date time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO daily_words (dw_id, word_id, en_word_id, date) VALUES ($1, $2, $3, $4)`,
		uuid.New(), wordID, enWordID, date,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyWord insert: %v", err)
	}
}
