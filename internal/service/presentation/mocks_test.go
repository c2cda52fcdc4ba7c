package presentation

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

// wordLookupMock is a mock implementation of wordLookup.
type wordLookupMock struct {
	TodayFunc  func(ctx context.Context, date string) (*domain.Word, error)
	BySlugFunc func(ctx context.Context, slug string) (*domain.Word, error)

	calls struct {
		Today []struct {
			Ctx  context.Context
			Date string
		}
		BySlug []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockToday  sync.RWMutex
	lockBySlug sync.RWMutex
}

func (mock *wordLookupMock) Today(ctx context.Context, date string) (*domain.Word, error) {
	if mock.TodayFunc == nil {
		panic("wordLookupMock.TodayFunc: method is nil but wordLookup.Today was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{Ctx: ctx, Date: date}
	mock.lockToday.Lock()
	mock.calls.Today = append(mock.calls.Today, callInfo)
	mock.lockToday.Unlock()
	return mock.TodayFunc(ctx, date)
}

func (mock *wordLookupMock) TodayCalls() []struct {
	Ctx  context.Context
	Date string
} {
	mock.lockToday.RLock()
	defer mock.lockToday.RUnlock()
	return mock.calls.Today
}

func (mock *wordLookupMock) BySlug(ctx context.Context, slug string) (*domain.Word, error) {
	if mock.BySlugFunc == nil {
		panic("wordLookupMock.BySlugFunc: method is nil but wordLookup.BySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockBySlug.Lock()
	mock.calls.BySlug = append(mock.calls.BySlug, callInfo)
	mock.lockBySlug.Unlock()
	return mock.BySlugFunc(ctx, slug)
}

func (mock *wordLookupMock) BySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockBySlug.RLock()
	defer mock.lockBySlug.RUnlock()
	return mock.calls.BySlug
}
