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

// wordEntry mirrors one line of the words JSONL dump.
type wordEntry struct {
	EnglishWord        string   `json:"english_word"`
	PartsOfSpeech      []string `json:"parts_of_speech"`
	YorubaTranslations []string `json:"yoruba_translations"`
}

// seedPair is one validated english/yoruba pair ready for storage.
type seedPair struct {
	English      string
	Yoruba       string
	PartOfSpeech *string
}

// runWords streams the words JSONL file, expanding each entry into
// validated word pairs and committing them in batches.
func (p *Pipeline) runWords(ctx context.Context) PhaseResult {
	start := time.Now()
	result := PhaseResult{}

	if p.cfg.WordsPath == "" {
		result.Err = fmt.Errorf("words phase: no words_path configured")
		return result
	}

	f, err := os.Open(p.cfg.WordsPath)
	if err != nil {
		result.Err = fmt.Errorf("words phase: %w", err)
		return result
	}
	defer f.Close()

	var batch []seedPair
	flush := func() error {
		if p.cfg.DryRun || len(batch) == 0 {
			batch = batch[:0]
			return nil
		}
		pairs := batch
		err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
			for _, pair := range pairs {
				if err := p.storePair(ctx, pair); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		result.Inserted += len(pairs)
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

		var entry wordEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			p.log.Warn("words phase: bad JSONL line",
				slog.Int("line", line),
				slog.Any("error", err))
			result.Errors++
			continue
		}

		pairs, skipped := expandEntry(entry)
		result.Skipped += skipped
		batch = append(batch, pairs...)

		if len(batch) >= p.cfg.BatchSize {
			if err := flush(); err != nil {
				result.Err = fmt.Errorf("words phase: batch at line %d: %w", line, err)
				result.Duration = time.Since(start)
				return result
			}
		}
	}
	if err := scanner.Err(); err != nil {
		result.Err = fmt.Errorf("words phase: read: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if err := flush(); err != nil {
		result.Err = fmt.Errorf("words phase: final batch: %w", err)
	}

	result.Duration = time.Since(start)
	return result
}

func (p *Pipeline) storePair(ctx context.Context, pair seedPair) error {
	source, err := p.words.CreateIfAbsent(ctx, domain.English, pair.English, pair.PartOfSpeech)
	if err != nil {
		return fmt.Errorf("english %q: %w", pair.English, err)
	}
	target, err := p.words.CreateIfAbsent(ctx, domain.Yoruba, pair.Yoruba, nil)
	if err != nil {
		return fmt.Errorf("yoruba %q: %w", pair.Yoruba, err)
	}
	if err := p.translations.CreateIfAbsent(ctx, source.ID, target.ID); err != nil {
		return fmt.Errorf("link %q to %q: %w", pair.English, pair.Yoruba, err)
	}
	return nil
}

// expandEntry turns one dump entry into validated pairs: the English
// headword (once per part of speech) against every listed Yoruba
// rendering. Returns the pairs and how many candidates were skipped.
func expandEntry(entry wordEntry) ([]seedPair, int) {
	skipped := 0

	english := domain.NormalizeText(stripParens(entry.EnglishWord))
	if !domain.IsValidWord(domain.English, english) {
		return nil, 1
	}

	yoruba := make([]string, 0, len(entry.YorubaTranslations))
	seen := make(map[string]struct{})
	for _, raw := range entry.YorubaTranslations {
		// A single field can carry several renderings separated by
		// commas, with clarifications in parentheses.
		for _, part := range strings.Split(stripParens(raw), ",") {
			candidate := domain.NormalizeText(part)
			if candidate == "" {
				continue
			}
			if !domain.IsValidWord(domain.Yoruba, candidate) {
				skipped++
				continue
			}
			if _, dup := seen[candidate]; dup {
				continue
			}
			seen[candidate] = struct{}{}
			yoruba = append(yoruba, candidate)
		}
	}
	if len(yoruba) == 0 {
		return nil, skipped + 1
	}

	partsOfSpeech := entry.PartsOfSpeech
	if len(partsOfSpeech) == 0 {
		partsOfSpeech = []string{""}
	}

	var pairs []seedPair
	for _, pos := range partsOfSpeech {
		var posPtr *string
		if trimmed := strings.TrimSpace(pos); trimmed != "" {
			p := strings.ToLower(trimmed)
			posPtr = &p
		}
		for _, yo := range yoruba {
			pairs = append(pairs, seedPair{English: english, Yoruba: yo, PartOfSpeech: posPtr})
		}
	}

	return pairs, skipped
}

// stripParens removes parenthesized clarifications, e.g.
// "chair (furniture)" becomes "chair ".
func stripParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			} else {
				b.WriteRune(r)
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
