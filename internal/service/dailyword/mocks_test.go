package dailyword

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alarino/alarino-backend/internal/domain"
)

var _ dailyRepo = &dailyRepoMock{}

type dailyRepoMock struct {
	GetByDateFunc func(ctx context.Context, date time.Time) (*domain.DailyWordPair, error)
	CreateFunc    func(ctx context.Context, wordID, enWordID uuid.UUID, date time.Time) error

	calls struct {
		GetByDate []struct {
			Date time.Time
		}
		Create []struct {
			WordID   uuid.UUID
			EnWordID uuid.UUID
			Date     time.Time
		}
	}
	lockGetByDate sync.RWMutex
	lockCreate    sync.RWMutex
}

func (mock *dailyRepoMock) GetByDate(ctx context.Context, date time.Time) (*domain.DailyWordPair, error) {
	if mock.GetByDateFunc == nil {
		panic("dailyRepoMock.GetByDateFunc: method is nil but dailyRepo.GetByDate was just called")
	}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, struct{ Date time.Time }{Date: date})
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, date)
}

func (mock *dailyRepoMock) GetByDateCalls() []struct {
	Date time.Time
} {
	mock.lockGetByDate.RLock()
	calls := mock.calls.GetByDate
	mock.lockGetByDate.RUnlock()
	return calls
}

func (mock *dailyRepoMock) Create(ctx context.Context, wordID, enWordID uuid.UUID, date time.Time) error {
	if mock.CreateFunc == nil {
		panic("dailyRepoMock.CreateFunc: method is nil but dailyRepo.Create was just called")
	}
	callInfo := struct {
		WordID   uuid.UUID
		EnWordID uuid.UUID
		Date     time.Time
	}{WordID: wordID, EnWordID: enWordID, Date: date}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, wordID, enWordID, date)
}

func (mock *dailyRepoMock) CreateCalls() []struct {
	WordID   uuid.UUID
	EnWordID uuid.UUID
	Date     time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ wordPicker = &wordPickerMock{}

type wordPickerMock struct {
	RandomSingleTokenFunc func(ctx context.Context, lang domain.Language, excludeUsed bool) (*domain.Word, error)

	calls struct {
		RandomSingleToken []struct {
			Lang        domain.Language
			ExcludeUsed bool
		}
	}
	lockRandomSingleToken sync.RWMutex
}

func (mock *wordPickerMock) RandomSingleToken(ctx context.Context, lang domain.Language, excludeUsed bool) (*domain.Word, error) {
	if mock.RandomSingleTokenFunc == nil {
		panic("wordPickerMock.RandomSingleTokenFunc: method is nil but wordPicker.RandomSingleToken was just called")
	}
	callInfo := struct {
		Lang        domain.Language
		ExcludeUsed bool
	}{Lang: lang, ExcludeUsed: excludeUsed}
	mock.lockRandomSingleToken.Lock()
	mock.calls.RandomSingleToken = append(mock.calls.RandomSingleToken, callInfo)
	mock.lockRandomSingleToken.Unlock()
	return mock.RandomSingleTokenFunc(ctx, lang, excludeUsed)
}

func (mock *wordPickerMock) RandomSingleTokenCalls() []struct {
	Lang        domain.Language
	ExcludeUsed bool
} {
	mock.lockRandomSingleToken.RLock()
	calls := mock.calls.RandomSingleToken
	mock.lockRandomSingleToken.RUnlock()
	return calls
}

var _ translationRepo = &translationRepoMock{}

type translationRepoMock struct {
	ListSourceWordsFunc func(ctx context.Context, targetWordID uuid.UUID, sourceLang domain.Language) ([]domain.Word, error)

	calls struct {
		ListSourceWords []struct {
			TargetWordID uuid.UUID
			SourceLang   domain.Language
		}
	}
	lockListSourceWords sync.RWMutex
}

func (mock *translationRepoMock) ListSourceWords(ctx context.Context, targetWordID uuid.UUID, sourceLang domain.Language) ([]domain.Word, error) {
	if mock.ListSourceWordsFunc == nil {
		panic("translationRepoMock.ListSourceWordsFunc: method is nil but translationRepo.ListSourceWords was just called")
	}
	callInfo := struct {
		TargetWordID uuid.UUID
		SourceLang   domain.Language
	}{TargetWordID: targetWordID, SourceLang: sourceLang}
	mock.lockListSourceWords.Lock()
	mock.calls.ListSourceWords = append(mock.calls.ListSourceWords, callInfo)
	mock.lockListSourceWords.Unlock()
	return mock.ListSourceWordsFunc(ctx, targetWordID, sourceLang)
}

func (mock *translationRepoMock) ListSourceWordsCalls() []struct {
	TargetWordID uuid.UUID
	SourceLang   domain.Language
} {
	mock.lockListSourceWords.RLock()
	calls := mock.calls.ListSourceWords
	mock.lockListSourceWords.RUnlock()
	return calls
}
