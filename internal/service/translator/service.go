// Package translator resolves word lookups against the dictionary and,
// in parallel, an experimental model oracle. Dictionary entries and
// oracle candidates stay separate in the result so callers can label
// their provenance.
package translator

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alarino/alarino-backend/internal/domain"
)

// DefaultOracleDeadline bounds how long a resolve waits for the oracle
// after the dictionary lookup has finished.
const DefaultOracleDeadline = 500 * time.Millisecond

type wordRepo interface {
	GetByText(ctx context.Context, lang domain.Language, text string) (*domain.Word, error)
	ListTranslations(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error)
}

type missingRepo interface {
	RecordMiss(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error
	Top(ctx context.Context, limit int) ([]domain.MissingTranslation, error)
}

type oracleClient interface {
	Suggest(ctx context.Context, text string, source, target domain.Language) ([]string, error)
}

// Service provides translation resolution.
type Service struct {
	words    wordRepo
	missing  missingRepo
	oracle   oracleClient
	deadline time.Duration
	log      *slog.Logger
}

// NewService creates a new translator service. oracle may be nil when
// no model endpoint is configured; resolves then run dictionary-only.
func NewService(
	log *slog.Logger,
	words wordRepo,
	missing missingRepo,
	oracle oracleClient,
	oracleDeadline time.Duration,
) *Service {
	if oracleDeadline <= 0 {
		oracleDeadline = DefaultOracleDeadline
	}
	return &Service{
		words:    words,
		missing:  missing,
		oracle:   oracle,
		deadline: oracleDeadline,
		log:      log.With("service", "translator"),
	}
}
