package library

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

var _ libraryRepo = &libraryRepoMock{}

type libraryRepoMock struct {
	CreateFunc       func(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error)
	GetByIDFunc      func(ctx context.Context, id, ownerID int64) (*domain.LibraryItem, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID int64, limit, offset int) ([]domain.LibraryItem, error)
	UpdateFunc       func(ctx context.Context, id, ownerID int64, params domain.LibraryItemUpdate) (*domain.LibraryItem, error)
	DeleteFunc       func(ctx context.Context, id, ownerID int64) error
	CountByOwnerFunc func(ctx context.Context, ownerID int64) (int, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.LibraryItem
		}
		Update []struct {
			Ctx     context.Context
			ID      int64
			OwnerID int64
			Params  domain.LibraryItemUpdate
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *libraryRepoMock) Create(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error) {
	if mock.CreateFunc == nil {
		panic("libraryRepoMock.CreateFunc: method is nil but libraryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.LibraryItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *libraryRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.LibraryItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *libraryRepoMock) GetByID(ctx context.Context, id, ownerID int64) (*domain.LibraryItem, error) {
	if mock.GetByIDFunc == nil {
		panic("libraryRepoMock.GetByIDFunc: method is nil but libraryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id, ownerID)
}

func (mock *libraryRepoMock) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.LibraryItem, error) {
	if mock.ListByOwnerFunc == nil {
		panic("libraryRepoMock.ListByOwnerFunc: method is nil but libraryRepo.ListByOwner was just called")
	}
	return mock.ListByOwnerFunc(ctx, ownerID, limit, offset)
}

func (mock *libraryRepoMock) Update(ctx context.Context, id, ownerID int64, params domain.LibraryItemUpdate) (*domain.LibraryItem, error) {
	if mock.UpdateFunc == nil {
		panic("libraryRepoMock.UpdateFunc: method is nil but libraryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      int64
		OwnerID int64
		Params  domain.LibraryItemUpdate
	}{Ctx: ctx, ID: id, OwnerID: ownerID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, ownerID, params)
}

func (mock *libraryRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	ID      int64
	OwnerID int64
	Params  domain.LibraryItemUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *libraryRepoMock) Delete(ctx context.Context, id, ownerID int64) error {
	if mock.DeleteFunc == nil {
		panic("libraryRepoMock.DeleteFunc: method is nil but libraryRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id, ownerID)
}

func (mock *libraryRepoMock) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("libraryRepoMock.CountByOwnerFunc: method is nil but libraryRepo.CountByOwner was just called")
	}
	return mock.CountByOwnerFunc(ctx, ownerID)
}

var _ historySource = &historySourceMock{}

type historySourceMock struct {
	GetByIDAnyFunc func(ctx context.Context, id int64) (*domain.HistoryEntry, error)
}

func (mock *historySourceMock) GetByIDAny(ctx context.Context, id int64) (*domain.HistoryEntry, error) {
	if mock.GetByIDAnyFunc == nil {
		panic("historySourceMock.GetByIDAnyFunc: method is nil but historySource.GetByIDAny was just called")
	}
	return mock.GetByIDAnyFunc(ctx, id)
}

var _ limiter = &limiterMock{}

type limiterMock struct {
	PromptLimitReachedFunc func(ctx context.Context, userID int64) bool
}

func (mock *limiterMock) PromptLimitReached(ctx context.Context, userID int64) bool {
	if mock.PromptLimitReachedFunc == nil {
		panic("limiterMock.PromptLimitReachedFunc: method is nil but limiter.PromptLimitReached was just called")
	}
	return mock.PromptLimitReachedFunc(ctx, userID)
}
