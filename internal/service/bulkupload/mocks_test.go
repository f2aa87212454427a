package bulkupload

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alarino/alarino-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateIfAbsentFunc func(ctx context.Context, lang domain.Language, text string, partOfSpeech *string) (*domain.Word, error)

	calls struct {
		CreateIfAbsent []struct {
			Lang domain.Language
			Text string
		}
	}
	lockCreateIfAbsent sync.RWMutex
}

func (mock *wordRepoMock) CreateIfAbsent(ctx context.Context, lang domain.Language, text string, partOfSpeech *string) (*domain.Word, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("wordRepoMock.CreateIfAbsentFunc: method is nil but wordRepo.CreateIfAbsent was just called")
	}
	callInfo := struct {
		Lang domain.Language
		Text string
	}{Lang: lang, Text: text}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, lang, text, partOfSpeech)
}

func (mock *wordRepoMock) CreateIfAbsentCalls() []struct {
	Lang domain.Language
	Text string
} {
	mock.lockCreateIfAbsent.RLock()
	calls := mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}

var _ translationRepo = &translationRepoMock{}

type translationRepoMock struct {
	CreateIfAbsentFunc func(ctx context.Context, sourceWordID, targetWordID uuid.UUID) error

	calls struct {
		CreateIfAbsent []struct {
			SourceWordID uuid.UUID
			TargetWordID uuid.UUID
		}
	}
	lockCreateIfAbsent sync.RWMutex
}

func (mock *translationRepoMock) CreateIfAbsent(ctx context.Context, sourceWordID, targetWordID uuid.UUID) error {
	if mock.CreateIfAbsentFunc == nil {
		panic("translationRepoMock.CreateIfAbsentFunc: method is nil but translationRepo.CreateIfAbsent was just called")
	}
	callInfo := struct {
		SourceWordID uuid.UUID
		TargetWordID uuid.UUID
	}{SourceWordID: sourceWordID, TargetWordID: targetWordID}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, sourceWordID, targetWordID)
}

func (mock *translationRepoMock) CreateIfAbsentCalls() []struct {
	SourceWordID uuid.UUID
	TargetWordID uuid.UUID
} {
	mock.lockCreateIfAbsent.RLock()
	calls := mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the closure on the caller's context.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	lockRunInTx sync.RWMutex
	runInTxN    int
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lockRunInTx.Lock()
	mock.runInTxN++
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.runInTxN
}
