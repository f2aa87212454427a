// Package bulkupload ingests curated word pairs from CSV blobs. The
// pipeline validates every row up front and, in live mode, commits the
// whole accepted batch in one transaction.
package bulkupload

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alarino/alarino-backend/internal/domain"
)

type wordRepo interface {
	CreateIfAbsent(ctx context.Context, lang domain.Language, text string, partOfSpeech *string) (*domain.Word, error)
}

type translationRepo interface {
	CreateIfAbsent(ctx context.Context, sourceWordID, targetWordID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service ingests bulk word-pair uploads.
type Service struct {
	words        wordRepo
	translations translationRepo
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new bulk-upload service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	translations translationRepo,
	tx txManager,
) *Service {
	return &Service{
		words:        words,
		translations: translations,
		tx:           tx,
		log:          log.With("service", "bulkupload"),
	}
}
