// Package dailyword picks and serves the word of the day: one Yoruba
// single-token word per calendar date, stable across instances because
// the chosen pair is persisted under a unique date.
package dailyword

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alarino/alarino-backend/internal/domain"
)

// DefaultMaxAttempts bounds selection retries when random candidates
// keep lacking an English counterpart.
const DefaultMaxAttempts = 5

type dailyRepo interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyWordPair, error)
	Create(ctx context.Context, wordID, enWordID uuid.UUID, date time.Time) error
}

type wordPicker interface {
	RandomSingleToken(ctx context.Context, lang domain.Language, excludeUsed bool) (*domain.Word, error)
}

type translationRepo interface {
	ListSourceWords(ctx context.Context, targetWordID uuid.UUID, sourceLang domain.Language) ([]domain.Word, error)
}

// Cache memoizes the resolved pair per date. Entries for past dates are
// never read again, so the map stays one or two entries deep in
// practice; Reset exists for tests.
type Cache struct {
	mu    sync.Mutex
	pairs map[string]domain.DailyWordPair
}

// NewCache creates an empty daily-word cache.
func NewCache() *Cache {
	return &Cache{pairs: make(map[string]domain.DailyWordPair)}
}

func (c *Cache) get(key string) (domain.DailyWordPair, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pair, ok := c.pairs[key]
	return pair, ok
}

func (c *Cache) put(key string, pair domain.DailyWordPair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pairs[key] = pair
}

// Reset drops all cached entries.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pairs = make(map[string]domain.DailyWordPair)
}

// Service selects and serves the daily word.
type Service struct {
	daily        dailyRepo
	words        wordPicker
	translations translationRepo
	cache        *Cache
	maxAttempts  int
	avoidRepeats bool
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new daily-word service.
func NewService(
	log *slog.Logger,
	daily dailyRepo,
	words wordPicker,
	translations translationRepo,
	maxAttempts int,
	avoidRepeats bool,
) *Service {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Service{
		daily:        daily,
		words:        words,
		translations: translations,
		cache:        NewCache(),
		maxAttempts:  maxAttempts,
		avoidRepeats: avoidRepeats,
		now:          time.Now,
		log:          log.With("service", "dailyword"),
	}
}

// today returns the current UTC date truncated to midnight.
func (s *Service) today() time.Time {
	t := s.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
