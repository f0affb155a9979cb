package improver

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

var _ promptImprover = &promptImproverMock{}

type promptImproverMock struct {
	ImprovePromptFunc func(ctx context.Context, originalPrompt string) (string, error)

	calls struct {
		ImprovePrompt []struct {
			Ctx            context.Context
			OriginalPrompt string
		}
	}
	lockImprovePrompt sync.RWMutex
}

func (mock *promptImproverMock) ImprovePrompt(ctx context.Context, originalPrompt string) (string, error) {
	if mock.ImprovePromptFunc == nil {
		panic("promptImproverMock.ImprovePromptFunc: method is nil but promptImprover.ImprovePrompt was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		OriginalPrompt string
	}{Ctx: ctx, OriginalPrompt: originalPrompt}
	mock.lockImprovePrompt.Lock()
	mock.calls.ImprovePrompt = append(mock.calls.ImprovePrompt, callInfo)
	mock.lockImprovePrompt.Unlock()
	return mock.ImprovePromptFunc(ctx, originalPrompt)
}

func (mock *promptImproverMock) ImprovePromptCalls() []struct {
	Ctx            context.Context
	OriginalPrompt string
} {
	mock.lockImprovePrompt.RLock()
	calls := mock.calls.ImprovePrompt
	mock.lockImprovePrompt.RUnlock()
	return calls
}

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.HistoryEntry) (*domain.HistoryEntry, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.HistoryEntry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, e *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.HistoryEntry
	}{Ctx: ctx, Entry: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.HistoryEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ limiter = &limiterMock{}

type limiterMock struct {
	ImprovementLimitReachedFunc func(ctx context.Context, userID int64) bool

	calls struct {
		ImprovementLimitReached []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockImprovementLimitReached sync.RWMutex
}

func (mock *limiterMock) ImprovementLimitReached(ctx context.Context, userID int64) bool {
	if mock.ImprovementLimitReachedFunc == nil {
		panic("limiterMock.ImprovementLimitReachedFunc: method is nil but limiter.ImprovementLimitReached was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockImprovementLimitReached.Lock()
	mock.calls.ImprovementLimitReached = append(mock.calls.ImprovementLimitReached, callInfo)
	mock.lockImprovementLimitReached.Unlock()
	return mock.ImprovementLimitReachedFunc(ctx, userID)
}

func (mock *limiterMock) ImprovementLimitReachedCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockImprovementLimitReached.RLock()
	calls := mock.calls.ImprovementLimitReached
	mock.lockImprovementLimitReached.RUnlock()
	return calls
}
