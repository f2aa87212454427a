package translator

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alarino/alarino-backend/internal/domain"
	"github.com/alarino/alarino-backend/pkg/ctxutil"
)

func newTestService(t *testing.T, words *wordRepoMock, missing *missingRepoMock, oracle *oracleClientMock) *Service {
	t.Helper()
	svc := &Service{
		words:    words,
		missing:  missing,
		deadline: 50 * time.Millisecond,
		log:      slog.Default(),
	}
	if oracle != nil {
		svc.oracle = oracle
	}
	return svc
}

func wordOf(lang domain.Language, text string) *domain.Word {
	return &domain.Word{ID: uuid.New(), Language: lang, Text: text}
}

func TestResolve_DictionaryHit(t *testing.T) {
	t.Parallel()

	chair := wordOf(domain.English, "chair")
	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return chair, nil
		},
		ListTranslationsFunc: func(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error) {
			return []domain.Word{*wordOf(domain.Yoruba, "àga")}, nil
		},
	}
	missing := &missingRepoMock{}

	svc := newTestService(t, words, missing, nil)

	result, err := svc.Resolve(context.Background(), ResolveInput{
		Text:       "  Chair ",
		SourceLang: "en",
		TargetLang: "yo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SourceWord != "chair" {
		t.Errorf("source word: got %q, want %q", result.SourceWord, "chair")
	}
	if result.TargetLang != domain.Yoruba {
		t.Errorf("target lang: got %v, want yo", result.TargetLang)
	}
	if len(result.Translations) != 1 || result.Translations[0] != "àga" {
		t.Errorf("translations: got %v, want [àga]", result.Translations)
	}
	if result.Experimental != nil {
		t.Errorf("experimental should be nil without an oracle, got %v", result.Experimental)
	}
	if calls := words.GetByTextCalls(); len(calls) != 1 || calls[0].Text != "chair" {
		t.Errorf("GetByText calls: got %+v", calls)
	}
	if len(missing.RecordMissCalls()) != 0 {
		t.Errorf("no miss should be recorded on a hit")
	}
}

func TestResolve_MissRecordsLedgerOnce(t *testing.T) {
	t.Parallel()

	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return nil, domain.ErrNotFound
		},
	}
	missing := &missingRepoMock{
		RecordMissFunc: func(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error {
			return nil
		},
	}

	svc := newTestService(t, words, missing, nil)

	meta := domain.RequesterMeta{IP: "10.0.0.1", UserAgent: "curl/8.0"}
	ctx := ctxutil.WithRequester(context.Background(), meta)

	_, err := svc.Resolve(ctx, ResolveInput{Text: "zzzz", SourceLang: "en", TargetLang: "yo"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	calls := missing.RecordMissCalls()
	if len(calls) != 1 {
		t.Fatalf("RecordMiss calls: got %d, want 1", len(calls))
	}
	if calls[0].Text != "zzzz" || calls[0].Meta != meta {
		t.Errorf("RecordMiss args: got %+v", calls[0])
	}
}

func TestResolve_OutOfAlphabetTextStillRecordsMiss(t *testing.T) {
	t.Parallel()

	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return nil, domain.ErrNotFound
		},
	}
	missing := &missingRepoMock{
		RecordMissFunc: func(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error {
			return nil
		},
	}

	svc := newTestService(t, words, missing, nil)

	// Text outside the source alphabet is a legitimate lookup: it must
	// reach the ledger as a miss, not bounce as a validation error.
	for _, text := range []string{"chair123", "naïve"} {
		_, err := svc.Resolve(context.Background(), ResolveInput{
			Text:       text,
			SourceLang: "en",
			TargetLang: "yo",
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Resolve(%q): want ErrNotFound, got %v", text, err)
		}
	}

	calls := missing.RecordMissCalls()
	if len(calls) != 2 {
		t.Fatalf("RecordMiss calls: got %d, want 2", len(calls))
	}
	if calls[0].Text != "chair123" || calls[1].Text != "naïve" {
		t.Errorf("RecordMiss texts: got %+v", calls)
	}
}

func TestResolve_WordWithoutEdgesIsAMiss(t *testing.T) {
	t.Parallel()

	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return wordOf(domain.English, text), nil
		},
		ListTranslationsFunc: func(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error) {
			return nil, nil
		},
	}
	missing := &missingRepoMock{
		RecordMissFunc: func(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error {
			return nil
		},
	}

	svc := newTestService(t, words, missing, nil)

	_, err := svc.Resolve(context.Background(), ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "yo"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(missing.RecordMissCalls()) != 1 {
		t.Errorf("RecordMiss calls: got %d, want 1", len(missing.RecordMissCalls()))
	}
}

func TestResolve_OracleSavesAMiss(t *testing.T) {
	t.Parallel()

	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return nil, domain.ErrNotFound
		},
	}
	missing := &missingRepoMock{
		RecordMissFunc: func(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error {
			return nil
		},
	}
	oracle := &oracleClientMock{
		SuggestFunc: func(ctx context.Context, text string, source, target domain.Language) ([]string, error) {
			return []string{"àga"}, nil
		},
	}

	svc := newTestService(t, words, missing, oracle)

	result, err := svc.Resolve(context.Background(), ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "yo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Translations) != 0 {
		t.Errorf("translations: got %v, want none", result.Translations)
	}
	if len(result.Experimental) != 1 || result.Experimental[0] != "àga" {
		t.Errorf("experimental: got %v, want [àga]", result.Experimental)
	}
	// The dictionary miss is still a ledger entry even though the
	// oracle answered.
	if len(missing.RecordMissCalls()) != 1 {
		t.Errorf("RecordMiss calls: got %d, want 1", len(missing.RecordMissCalls()))
	}
}

func TestResolve_SlowOracleIsDropped(t *testing.T) {
	t.Parallel()

	chair := wordOf(domain.English, "chair")
	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return chair, nil
		},
		ListTranslationsFunc: func(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error) {
			return []domain.Word{*wordOf(domain.Yoruba, "àga")}, nil
		},
	}
	oracle := &oracleClientMock{
		SuggestFunc: func(ctx context.Context, text string, source, target domain.Language) ([]string, error) {
			time.Sleep(500 * time.Millisecond)
			return []string{"ìjókòó"}, nil
		},
	}

	svc := newTestService(t, words, &missingRepoMock{}, oracle)

	start := time.Now()
	result, err := svc.Resolve(context.Background(), ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "yo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Errorf("resolve waited %v for the oracle, deadline is 50ms", elapsed)
	}
	if result.Experimental != nil {
		t.Errorf("late oracle answer should be dropped, got %v", result.Experimental)
	}
	if len(result.Translations) != 1 {
		t.Errorf("translations: got %v", result.Translations)
	}
}

func TestResolve_OracleFailureIsNotARequestFailure(t *testing.T) {
	t.Parallel()

	chair := wordOf(domain.English, "chair")
	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return chair, nil
		},
		ListTranslationsFunc: func(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error) {
			return []domain.Word{*wordOf(domain.Yoruba, "àga")}, nil
		},
	}
	oracle := &oracleClientMock{
		SuggestFunc: func(ctx context.Context, text string, source, target domain.Language) ([]string, error) {
			return nil, errors.New("model endpoint down")
		},
	}

	svc := newTestService(t, words, &missingRepoMock{}, oracle)

	result, err := svc.Resolve(context.Background(), ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "yo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Experimental != nil {
		t.Errorf("experimental: got %v, want nil", result.Experimental)
	}
}

func TestResolve_LedgerFailureDoesNotFailResolve(t *testing.T) {
	t.Parallel()

	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return nil, domain.ErrNotFound
		},
	}
	missing := &missingRepoMock{
		RecordMissFunc: func(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error {
			return errors.New("ledger unavailable")
		},
	}
	oracle := &oracleClientMock{
		SuggestFunc: func(ctx context.Context, text string, source, target domain.Language) ([]string, error) {
			return []string{"àga"}, nil
		},
	}

	svc := newTestService(t, words, missing, oracle)

	result, err := svc.Resolve(context.Background(), ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "yo"})
	if err != nil {
		t.Fatalf("ledger failure must not fail the resolve: %v", err)
	}
	if len(result.Experimental) != 1 {
		t.Errorf("experimental: got %v", result.Experimental)
	}
}

func TestResolve_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &wordRepoMock{}, &missingRepoMock{}, nil)

	tests := []struct {
		name  string
		input ResolveInput
		field string
	}{
		{"empty text", ResolveInput{Text: "   ", SourceLang: "en", TargetLang: "yo"}, "text"},
		{"bad source", ResolveInput{Text: "chair", SourceLang: "fr", TargetLang: "yo"}, "source_lang"},
		{"bad target", ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "xx"}, "target_lang"},
		{"uppercase code", ResolveInput{Text: "chair", SourceLang: "EN", TargetLang: "yo"}, "source_lang"},
		{"same languages", ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "en"}, "target_lang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Resolve(context.Background(), tt.input)

			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			found := false
			for _, f := range vErr.Errors {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("want error on field %q, got %+v", tt.field, vErr.Errors)
			}
		})
	}
}

func TestResolve_StorageErrorSurfaces(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	words := &wordRepoMock{
		GetByTextFunc: func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
			return nil, boom
		},
	}

	svc := newTestService(t, words, &missingRepoMock{}, nil)

	_, err := svc.Resolve(context.Background(), ResolveInput{Text: "chair", SourceLang: "en", TargetLang: "yo"})
	if !errors.Is(err, boom) {
		t.Fatalf("want storage error surfaced, got %v", err)
	}
}

func TestTopMissing(t *testing.T) {
	t.Parallel()

	missing := &missingRepoMock{
		TopFunc: func(ctx context.Context, limit int) ([]domain.MissingTranslation, error) {
			return []domain.MissingTranslation{{Text: "chair", HitCount: 7}}, nil
		},
	}

	svc := newTestService(t, &wordRepoMock{}, missing, nil)

	got, err := svc.TopMissing(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Text != "chair" {
		t.Errorf("records: got %+v", got)
	}
	if calls := missing.TopCalls(); len(calls) != 1 || calls[0].Limit != 50 {
		t.Errorf("limit should default to 50, got %+v", calls)
	}
}
