package word

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

// wordRepoMock is a mock implementation of wordRepo.
type wordRepoMock struct {
	GetByDateFunc       func(ctx context.Context, date string) (*domain.Word, error)
	GetBySlugFunc       func(ctx context.Context, slug string) (*domain.Word, error)
	GetRecentByTypeFunc func(ctx context.Context, vt domain.VisualizationType, limit int, cutoff string) ([]domain.HistoryEntry, error)
	GetOnePerTypeFunc   func(ctx context.Context) (map[domain.VisualizationType]*domain.Word, error)

	calls struct {
		GetByDate []struct {
			Ctx  context.Context
			Date string
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		GetRecentByType []struct {
			Ctx    context.Context
			Vt     domain.VisualizationType
			Limit  int
			Cutoff string
		}
		GetOnePerType []struct {
			Ctx context.Context
		}
	}
	lockGetByDate       sync.RWMutex
	lockGetBySlug       sync.RWMutex
	lockGetRecentByType sync.RWMutex
	lockGetOnePerType   sync.RWMutex
}

func (mock *wordRepoMock) GetByDate(ctx context.Context, date string) (*domain.Word, error) {
	if mock.GetByDateFunc == nil {
		panic("wordRepoMock.GetByDateFunc: method is nil but wordRepo.GetByDate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{Ctx: ctx, Date: date}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, callInfo)
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, date)
}

func (mock *wordRepoMock) GetByDateCalls() []struct {
	Ctx  context.Context
	Date string
} {
	mock.lockGetByDate.RLock()
	defer mock.lockGetByDate.RUnlock()
	return mock.calls.GetByDate
}

func (mock *wordRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Word, error) {
	if mock.GetBySlugFunc == nil {
		panic("wordRepoMock.GetBySlugFunc: method is nil but wordRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *wordRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	defer mock.lockGetBySlug.RUnlock()
	return mock.calls.GetBySlug
}

func (mock *wordRepoMock) GetRecentByType(ctx context.Context, vt domain.VisualizationType, limit int, cutoff string) ([]domain.HistoryEntry, error) {
	if mock.GetRecentByTypeFunc == nil {
		panic("wordRepoMock.GetRecentByTypeFunc: method is nil but wordRepo.GetRecentByType was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Vt     domain.VisualizationType
		Limit  int
		Cutoff string
	}{Ctx: ctx, Vt: vt, Limit: limit, Cutoff: cutoff}
	mock.lockGetRecentByType.Lock()
	mock.calls.GetRecentByType = append(mock.calls.GetRecentByType, callInfo)
	mock.lockGetRecentByType.Unlock()
	return mock.GetRecentByTypeFunc(ctx, vt, limit, cutoff)
}

func (mock *wordRepoMock) GetRecentByTypeCalls() []struct {
	Ctx    context.Context
	Vt     domain.VisualizationType
	Limit  int
	Cutoff string
} {
	mock.lockGetRecentByType.RLock()
	defer mock.lockGetRecentByType.RUnlock()
	return mock.calls.GetRecentByType
}

func (mock *wordRepoMock) GetOnePerType(ctx context.Context) (map[domain.VisualizationType]*domain.Word, error) {
	if mock.GetOnePerTypeFunc == nil {
		panic("wordRepoMock.GetOnePerTypeFunc: method is nil but wordRepo.GetOnePerType was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetOnePerType.Lock()
	mock.calls.GetOnePerType = append(mock.calls.GetOnePerType, callInfo)
	mock.lockGetOnePerType.Unlock()
	return mock.GetOnePerTypeFunc(ctx)
}

func (mock *wordRepoMock) GetOnePerTypeCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetOnePerType.RLock()
	defer mock.lockGetOnePerType.RUnlock()
	return mock.calls.GetOnePerType
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
