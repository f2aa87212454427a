// Package proverb serves Yoruba proverbs with their English renderings.
package proverb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alarino/alarino-backend/internal/domain"
)

type proverbRepo interface {
	Random(ctx context.Context) (*domain.Proverb, error)
}

// Service provides proverb lookups.
type Service struct {
	proverbs proverbRepo
	log      *slog.Logger
}

// NewService creates a new proverb service.
func NewService(log *slog.Logger, proverbs proverbRepo) *Service {
	return &Service{
		proverbs: proverbs,
		log:      log.With("service", "proverb"),
	}
}

// Random returns a random proverb. An empty table surfaces as
// domain.ErrNotFound.
func (s *Service) Random(ctx context.Context) (*domain.Proverb, error) {
	p, err := s.proverbs.Random(ctx)
	if err != nil {
		return nil, fmt.Errorf("random proverb: %w", err)
	}
	return p, nil
}
