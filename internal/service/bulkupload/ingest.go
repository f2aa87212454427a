package bulkupload

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alarino/alarino-backend/internal/domain"
)

// Ingest parses the CSV blob, validates every row and, unless DryRun
// is set, stores the accepted pairs inside one transaction. A commit
// failure rejects the whole batch; rows never land partially.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (*IngestResult, error) {
	result := &IngestResult{
		Accepted: []domain.WordPair{},
		Rejected: []Rejection{},
		DryRun:   input.DryRun,
	}

	reader := csv.NewReader(strings.NewReader(input.Text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{
				Line:   line,
				Raw:    err.Error(),
				Reason: MalformedRow,
			})
			continue
		}

		if isEmptyRecord(record) {
			continue
		}
		if len(record) != 2 {
			result.Rejected = append(result.Rejected, Rejection{
				Line:   line,
				Raw:    strings.Join(record, ","),
				Reason: MalformedRow,
			})
			continue
		}

		english := domain.NormalizeText(record[0])
		yoruba := domain.NormalizeText(record[1])
		raw := english + "," + yoruba

		if !domain.IsValidWord(domain.English, english) {
			result.Rejected = append(result.Rejected, Rejection{Line: line, Raw: raw, Reason: InvalidSourceWord})
			continue
		}
		if !domain.IsValidWord(domain.Yoruba, yoruba) {
			result.Rejected = append(result.Rejected, Rejection{Line: line, Raw: raw, Reason: InvalidTargetWord})
			continue
		}

		result.Accepted = append(result.Accepted, domain.WordPair{English: english, Yoruba: yoruba})
	}

	if input.DryRun || len(result.Accepted) == 0 {
		return result, nil
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, pair := range result.Accepted {
			if err := s.storePair(ctx, pair); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "bulk upload batch failed",
			slog.Int("accepted", len(result.Accepted)),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", domain.ErrBatchCommitFailed, err)
	}

	s.log.InfoContext(ctx, "bulk upload committed",
		slog.Int("accepted", len(result.Accepted)),
		slog.Int("rejected", len(result.Rejected)))

	return result, nil
}

func (s *Service) storePair(ctx context.Context, pair domain.WordPair) error {
	source, err := s.words.CreateIfAbsent(ctx, domain.English, pair.English, nil)
	if err != nil {
		return fmt.Errorf("store english %q: %w", pair.English, err)
	}
	target, err := s.words.CreateIfAbsent(ctx, domain.Yoruba, pair.Yoruba, nil)
	if err != nil {
		return fmt.Errorf("store yoruba %q: %w", pair.Yoruba, err)
	}
	if err := s.translations.CreateIfAbsent(ctx, source.ID, target.ID); err != nil {
		return fmt.Errorf("link %q to %q: %w", pair.English, pair.Yoruba, err)
	}
	return nil
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
