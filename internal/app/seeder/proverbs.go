package seeder

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alarino/alarino-backend/internal/domain"
)

// proverbEntry mirrors one line of the proverbs JSONL dump.
type proverbEntry struct {
	Yoruba  string `json:"yoruba"`
	English string `json:"english"`
}

// runProverbs streams the proverbs JSONL file and stores valid entries
// in batches.
func (p *Pipeline) runProverbs(ctx context.Context) PhaseResult {
	start := time.Now()
	result := PhaseResult{}

	if p.cfg.ProverbsPath == "" {
		result.Err = fmt.Errorf("proverbs phase: no proverbs_path configured")
		return result
	}

	f, err := os.Open(p.cfg.ProverbsPath)
	if err != nil {
		result.Err = fmt.Errorf("proverbs phase: %w", err)
		return result
	}
	defer f.Close()

	var batch []proverbEntry
	flush := func() error {
		if p.cfg.DryRun || len(batch) == 0 {
			batch = batch[:0]
			return nil
		}
		entries := batch
		err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
			for _, e := range entries {
				if err := p.proverbs.CreateIfAbsent(ctx, e.Yoruba, e.English); err != nil {
					return fmt.Errorf("proverb %q: %w", e.Yoruba, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		result.Inserted += len(entries)
		batch = batch[:0]
		return nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var entry proverbEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			p.log.Warn("proverbs phase: bad JSONL line",
				slog.Int("line", line),
				slog.Any("error", err))
			result.Errors++
			continue
		}

		entry.Yoruba = domain.NormalizeText(entry.Yoruba)
		entry.English = strings.TrimSpace(entry.English)
		if entry.English == "" || !domain.IsValidText(domain.Yoruba, entry.Yoruba) {
			result.Skipped++
			continue
		}

		batch = append(batch, entry)
		if len(batch) >= p.cfg.BatchSize {
			if err := flush(); err != nil {
				result.Err = fmt.Errorf("proverbs phase: batch at line %d: %w", line, err)
				result.Duration = time.Since(start)
				return result
			}
		}
	}
	if err := scanner.Err(); err != nil {
		result.Err = fmt.Errorf("proverbs phase: read: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if err := flush(); err != nil {
		result.Err = fmt.Errorf("proverbs phase: final batch: %w", err)
	}

	result.Duration = time.Since(start)
	return result
}
