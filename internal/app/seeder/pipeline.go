// Package seeder populates the dictionary from curated JSONL datasets:
// a word-pair dump and a proverb collection. It is intended to be run
// offline, not as part of the main server.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alarino/alarino-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"words", "proverbs"}

// WordBulkRepo is the storage surface the words phase needs.
type WordBulkRepo interface {
	CreateIfAbsent(ctx context.Context, lang domain.Language, text string, partOfSpeech *string) (*domain.Word, error)
}

// TranslationBulkRepo links word pairs.
type TranslationBulkRepo interface {
	CreateIfAbsent(ctx context.Context, sourceWordID, targetWordID uuid.UUID) error
}

// ProverbBulkRepo is the storage surface the proverbs phase needs.
type ProverbBulkRepo interface {
	CreateIfAbsent(ctx context.Context, yorubaText, englishText string) error
}

// TxRunner batches phase writes into transactions.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log          *slog.Logger
	words        WordBulkRepo
	translations TranslationBulkRepo
	proverbs     ProverbBulkRepo
	tx           TxRunner
	cfg          Config

	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	log *slog.Logger,
	words WordBulkRepo,
	translations TranslationBulkRepo,
	proverbs ProverbBulkRepo,
	tx TxRunner,
	cfg Config,
) *Pipeline {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 500
	}
	return &Pipeline{
		log:          log,
		words:        words,
		translations: translations,
		proverbs:     proverbs,
		tx:           tx,
		cfg:          cfg,
		results:      make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed
// phases run. The phases touch disjoint tables, so they run in
// parallel under one errgroup.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	results := make([]PhaseResult, len(toRun))

	g, gctx := errgroup.WithContext(ctx)
	for i, phase := range toRun {
		p.log.Info("starting phase", slog.String("phase", phase))

		switch phase {
		case "words":
			g.Go(func() error {
				results[i] = p.runWords(gctx)
				return results[i].Err
			})
		case "proverbs":
			g.Go(func() error {
				results[i] = p.runProverbs(gctx)
				return results[i].Err
			})
		default:
			return fmt.Errorf("unknown phase %q", phase)
		}
	}

	err := g.Wait()

	for i, phase := range toRun {
		r := results[i]
		p.results[phase] = r
		p.log.Info("phase finished",
			slog.String("phase", phase),
			slog.Int("inserted", r.Inserted),
			slog.Int("skipped", r.Skipped),
			slog.Int("errors", r.Errors),
			slog.Duration("duration", r.Duration),
		)
	}

	return err
}
