// Package oracle asks an OpenAI-compatible model for translation
// candidates when the database has none. The client is best-effort:
// callers race it against a deadline and treat every failure as an
// empty candidate list.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/alarino/alarino-backend/internal/domain"
)

const (
	maxCandidates = 5

	breakerMaxRequests = 3
	breakerInterval    = 30 * time.Second
	breakerTimeout     = 60 * time.Second
	breakerMinRequests = 5
	breakerFailureRate = 0.6
)

// Config carries the settings for the model endpoint.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
}

// Client queries a chat-completion endpoint for translation candidates.
type Client struct {
	api        *openai.Client
	model      string
	maxRetries int
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// New creates an oracle client. Returns nil when no API key is
// configured; a nil *Client is a valid, always-miss oracle.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		return nil
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "oracle",
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breakerFailureRate
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("oracle breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &Client{
		api:        openai.NewClientWithConfig(apiCfg),
		model:      cfg.Model,
		maxRetries: maxRetries,
		breaker:    breaker,
		logger:     logger,
	}
}

// Suggest returns up to five candidate translations of text from source
// to target. Candidates are normalized and filtered through the target
// language's character validation. An explicit empty array from the
// model is a valid "no confident answer" and returns (nil, nil);
// malformed or all-invalid responses are errors so the retry loop can
// ask again.
func (c *Client) Suggest(ctx context.Context, text string, source, target domain.Language) ([]string, error) {
	if c == nil {
		return nil, nil
	}

	prompt := buildPrompt(text, source, target)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates, err := c.complete(ctx, prompt, target)
		if err == nil {
			return candidates, nil
		}
		lastErr = err
		c.logger.Debug("oracle attempt failed",
			slog.Int("attempt", attempt),
			slog.String("text", text),
			slog.Any("error", err))
	}

	return nil, fmt.Errorf("suggest %q: %w", text, lastErr)
}

func (c *Client) complete(ctx context.Context, prompt string, target domain.Language) ([]string, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens:   120,
			Temperature: 0.2,
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("empty completion")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return nil, err
	}

	candidates, err := parseCandidates(result.(string), target)
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

const systemPrompt = "You are a bilingual English-Yoruba lexicographer. " +
	"Answer with a JSON array of strings and nothing else. " +
	"Yoruba words must carry full tone marks and underdots."

func buildPrompt(text string, source, target domain.Language) string {
	name := func(l domain.Language) string {
		if l == domain.Yoruba {
			return "Yoruba"
		}
		return "English"
	}
	return fmt.Sprintf(
		"Translate the %s word or phrase %q into %s. "+
			"Reply with a JSON array of 1 to 5 distinct %s translations, best first.",
		name(source), text, name(target), name(target))
}

// parseCandidates extracts the JSON array from a completion. Models
// sometimes wrap the array in prose or code fences, so the parse takes
// whatever sits between the first '[' and the last ']'.
func parseCandidates(content string, target domain.Language) ([]string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array in completion")
	}

	var raw []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	if len(raw) > maxCandidates {
		return nil, fmt.Errorf("candidate count %d out of range", len(raw))
	}
	// An explicit empty array is the model declining to answer. That is
	// a final outcome, not something to re-ask.
	if len(raw) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(raw))
	candidates := make([]string, 0, len(raw))
	for _, cand := range raw {
		normalized := domain.NormalizeText(cand)
		if !domain.IsValidWord(target, normalized) {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		candidates = append(candidates, normalized)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no valid %s candidates in completion", target)
	}

	return candidates, nil
}
