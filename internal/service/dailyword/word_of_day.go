package dailyword

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alarino/alarino-backend/internal/domain"
)

// WordOfDay returns the pair chosen for the current date, selecting and
// persisting one if no choice exists yet. The unique date constraint in
// storage arbitrates concurrent selection: a loser re-reads the
// winner's record, so every caller sees the same pair.
func (s *Service) WordOfDay(ctx context.Context) (*domain.DailyWordPair, error) {
	date := s.today()
	key := dateKey(date)

	if pair, ok := s.cache.get(key); ok {
		return &pair, nil
	}

	pair, err := s.daily.GetByDate(ctx, date)
	if err == nil {
		s.cache.put(key, *pair)
		return pair, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get daily word for %s: %w", key, err)
	}

	pair, err = s.selectPair(ctx, date)
	if err != nil {
		return nil, err
	}

	s.cache.put(key, *pair)
	return pair, nil
}

// selectPair draws random single-token Yoruba words until one with an
// English counterpart turns up, then records it for the date.
func (s *Service) selectPair(ctx context.Context, date time.Time) (*domain.DailyWordPair, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate, err := s.words.RandomSingleToken(ctx, domain.Yoruba, s.avoidRepeats)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Every eligible word may already have a date; retry
				// without the exclusion before giving up.
				if s.avoidRepeats {
					candidate, err = s.words.RandomSingleToken(ctx, domain.Yoruba, false)
				}
				if errors.Is(err, domain.ErrNotFound) {
					return nil, fmt.Errorf("pick daily word candidate: %w", domain.ErrSelectionExhausted)
				}
			}
			if err != nil {
				return nil, fmt.Errorf("pick daily word candidate: %w", err)
			}
		}

		sources, err := s.translations.ListSourceWords(ctx, candidate.ID, domain.English)
		if err != nil {
			return nil, fmt.Errorf("list english sources for %q: %w", candidate.Text, err)
		}
		if len(sources) == 0 {
			s.log.DebugContext(ctx, "daily word candidate has no english counterpart",
				slog.Int("attempt", attempt),
				slog.String("candidate", candidate.Text))
			continue
		}

		english := sources[0]
		if err := s.daily.Create(ctx, candidate.ID, english.ID, date); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				// Another instance won the race for this date.
				winner, err := s.daily.GetByDate(ctx, date)
				if err != nil {
					return nil, fmt.Errorf("read daily word winner: %w", err)
				}
				return winner, nil
			}
			return nil, fmt.Errorf("record daily word: %w", err)
		}

		s.log.InfoContext(ctx, "daily word selected",
			slog.String("date", dateKey(date)),
			slog.String("yoruba", candidate.Text),
			slog.String("english", english.Text))

		return &domain.DailyWordPair{YorubaWord: candidate.Text, EnglishWord: english.Text}, nil
	}

	return nil, fmt.Errorf("no candidate with a translation after %d attempts: %w",
		s.maxAttempts, domain.ErrSelectionExhausted)
}
