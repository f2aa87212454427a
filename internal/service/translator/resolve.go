package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alarino/alarino-backend/internal/domain"
	"github.com/alarino/alarino-backend/pkg/ctxutil"
)

// Resolve looks the text up in the dictionary while racing the oracle
// for experimental candidates. The dictionary branch runs on the
// request goroutine; the oracle gets at most the configured deadline
// beyond it. A miss in the dictionary is recorded in the missing-word
// ledger exactly once per resolve.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*ResolveResult, error) {
	query, err := input.validate()
	if err != nil {
		return nil, err
	}

	oracleCh := s.askOracle(ctx, query)

	translations, err := s.lookupDictionary(ctx, query)
	if err != nil {
		return nil, err
	}

	var experimental []string
	if oracleCh != nil {
		select {
		case experimental = <-oracleCh:
		case <-time.After(s.deadline):
			s.log.DebugContext(ctx, "oracle missed deadline",
				slog.String("text", query.Text),
				slog.Duration("deadline", s.deadline))
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if len(translations) == 0 {
		s.recordMiss(ctx, query)
		if len(experimental) == 0 {
			return nil, fmt.Errorf("resolve %q: %w", query.Text, domain.ErrNotFound)
		}
	}

	return &ResolveResult{
		SourceWord:   query.Text,
		TargetLang:   query.Target,
		Translations: translations,
		Experimental: experimental,
	}, nil
}

// askOracle launches the oracle branch. The goroutine writes once to a
// buffered channel, so a late answer is dropped without blocking it.
// It runs on a detached context: the request finishing must not turn
// an in-flight completion into a spurious cancellation error.
func (s *Service) askOracle(ctx context.Context, query resolveQuery) <-chan []string {
	if s.oracle == nil {
		return nil
	}

	ch := make(chan []string, 1)
	detached := context.WithoutCancel(ctx)

	go func() {
		candidates, err := s.oracle.Suggest(detached, query.Text, query.Source, query.Target)
		if err != nil {
			s.log.DebugContext(ctx, "oracle suggestion failed",
				slog.String("text", query.Text),
				slog.Any("error", err))
			ch <- nil
			return
		}
		ch <- candidates
	}()

	return ch
}

func (s *Service) lookupDictionary(ctx context.Context, query resolveQuery) ([]string, error) {
	word, err := s.words.GetByText(ctx, query.Source, query.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get word %q: %w", query.Text, err)
	}

	targets, err := s.words.ListTranslations(ctx, word.ID, query.Target)
	if err != nil {
		return nil, fmt.Errorf("list translations for %q: %w", query.Text, err)
	}

	translations := make([]string, 0, len(targets))
	for _, t := range targets {
		translations = append(translations, t.Text)
	}

	return translations, nil
}

// recordMiss is best-effort: ledger failures are logged, never surfaced.
func (s *Service) recordMiss(ctx context.Context, query resolveQuery) {
	meta := ctxutil.RequesterFromCtx(ctx)
	if err := s.missing.RecordMiss(ctx, query.Text, query.Source, query.Target, meta); err != nil {
		s.log.WarnContext(ctx, "failed to record missing translation",
			slog.String("text", query.Text),
			slog.Any("error", err))
	}
}

// TopMissing lists the most requested words the dictionary lacks.
func (s *Service) TopMissing(ctx context.Context, limit int) ([]domain.MissingTranslation, error) {
	if limit < 1 {
		limit = 50
	}
	records, err := s.missing.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list missing translations: %w", err)
	}
	return records, nil
}
