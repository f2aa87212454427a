package translator

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alarino/alarino-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByTextFunc        func(ctx context.Context, lang domain.Language, text string) (*domain.Word, error)
	ListTranslationsFunc func(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error)

	calls struct {
		GetByText []struct {
			Lang domain.Language
			Text string
		}
		ListTranslations []struct {
			SourceWordID uuid.UUID
			TargetLang   domain.Language
		}
	}
	lockGetByText        sync.RWMutex
	lockListTranslations sync.RWMutex
}

func (mock *wordRepoMock) GetByText(ctx context.Context, lang domain.Language, text string) (*domain.Word, error) {
	if mock.GetByTextFunc == nil {
		panic("wordRepoMock.GetByTextFunc: method is nil but wordRepo.GetByText was just called")
	}
	callInfo := struct {
		Lang domain.Language
		Text string
	}{Lang: lang, Text: text}
	mock.lockGetByText.Lock()
	mock.calls.GetByText = append(mock.calls.GetByText, callInfo)
	mock.lockGetByText.Unlock()
	return mock.GetByTextFunc(ctx, lang, text)
}

func (mock *wordRepoMock) GetByTextCalls() []struct {
	Lang domain.Language
	Text string
} {
	mock.lockGetByText.RLock()
	calls := mock.calls.GetByText
	mock.lockGetByText.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListTranslations(ctx context.Context, sourceWordID uuid.UUID, targetLang domain.Language) ([]domain.Word, error) {
	if mock.ListTranslationsFunc == nil {
		panic("wordRepoMock.ListTranslationsFunc: method is nil but wordRepo.ListTranslations was just called")
	}
	callInfo := struct {
		SourceWordID uuid.UUID
		TargetLang   domain.Language
	}{SourceWordID: sourceWordID, TargetLang: targetLang}
	mock.lockListTranslations.Lock()
	mock.calls.ListTranslations = append(mock.calls.ListTranslations, callInfo)
	mock.lockListTranslations.Unlock()
	return mock.ListTranslationsFunc(ctx, sourceWordID, targetLang)
}

func (mock *wordRepoMock) ListTranslationsCalls() []struct {
	SourceWordID uuid.UUID
	TargetLang   domain.Language
} {
	mock.lockListTranslations.RLock()
	calls := mock.calls.ListTranslations
	mock.lockListTranslations.RUnlock()
	return calls
}

var _ missingRepo = &missingRepoMock{}

type missingRepoMock struct {
	RecordMissFunc func(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error
	TopFunc        func(ctx context.Context, limit int) ([]domain.MissingTranslation, error)

	calls struct {
		RecordMiss []struct {
			Text   string
			Source domain.Language
			Target domain.Language
			Meta   domain.RequesterMeta
		}
		Top []struct {
			Limit int
		}
	}
	lockRecordMiss sync.RWMutex
	lockTop        sync.RWMutex
}

func (mock *missingRepoMock) RecordMiss(ctx context.Context, text string, source, target domain.Language, meta domain.RequesterMeta) error {
	if mock.RecordMissFunc == nil {
		panic("missingRepoMock.RecordMissFunc: method is nil but missingRepo.RecordMiss was just called")
	}
	callInfo := struct {
		Text   string
		Source domain.Language
		Target domain.Language
		Meta   domain.RequesterMeta
	}{Text: text, Source: source, Target: target, Meta: meta}
	mock.lockRecordMiss.Lock()
	mock.calls.RecordMiss = append(mock.calls.RecordMiss, callInfo)
	mock.lockRecordMiss.Unlock()
	return mock.RecordMissFunc(ctx, text, source, target, meta)
}

func (mock *missingRepoMock) RecordMissCalls() []struct {
	Text   string
	Source domain.Language
	Target domain.Language
	Meta   domain.RequesterMeta
} {
	mock.lockRecordMiss.RLock()
	calls := mock.calls.RecordMiss
	mock.lockRecordMiss.RUnlock()
	return calls
}

func (mock *missingRepoMock) Top(ctx context.Context, limit int) ([]domain.MissingTranslation, error) {
	if mock.TopFunc == nil {
		panic("missingRepoMock.TopFunc: method is nil but missingRepo.Top was just called")
	}
	callInfo := struct {
		Limit int
	}{Limit: limit}
	mock.lockTop.Lock()
	mock.calls.Top = append(mock.calls.Top, callInfo)
	mock.lockTop.Unlock()
	return mock.TopFunc(ctx, limit)
}

func (mock *missingRepoMock) TopCalls() []struct {
	Limit int
} {
	mock.lockTop.RLock()
	calls := mock.calls.Top
	mock.lockTop.RUnlock()
	return calls
}

var _ oracleClient = &oracleClientMock{}

type oracleClientMock struct {
	SuggestFunc func(ctx context.Context, text string, source, target domain.Language) ([]string, error)

	calls struct {
		Suggest []struct {
			Text   string
			Source domain.Language
			Target domain.Language
		}
	}
	lockSuggest sync.RWMutex
}

func (mock *oracleClientMock) Suggest(ctx context.Context, text string, source, target domain.Language) ([]string, error) {
	if mock.SuggestFunc == nil {
		panic("oracleClientMock.SuggestFunc: method is nil but oracleClient.Suggest was just called")
	}
	callInfo := struct {
		Text   string
		Source domain.Language
		Target domain.Language
	}{Text: text, Source: source, Target: target}
	mock.lockSuggest.Lock()
	mock.calls.Suggest = append(mock.calls.Suggest, callInfo)
	mock.lockSuggest.Unlock()
	return mock.SuggestFunc(ctx, text, source, target)
}

func (mock *oracleClientMock) SuggestCalls() []struct {
	Text   string
	Source domain.Language
	Target domain.Language
} {
	mock.lockSuggest.RLock()
	calls := mock.calls.Suggest
	mock.lockSuggest.RUnlock()
	return calls
}
