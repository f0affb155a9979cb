package history

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id int64, ownerID *int64) (*domain.HistoryEntry, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID *int64, limit, offset int) ([]domain.HistoryEntry, error)
	CountByOwnerFunc func(ctx context.Context, ownerID *int64) (int, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			ID      int64
			OwnerID *int64
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID *int64
			Limit   int
			Offset  int
		}
		CountByOwner []struct {
			Ctx     context.Context
			OwnerID *int64
		}
	}
	lockGetByID      sync.RWMutex
	lockListByOwner  sync.RWMutex
	lockCountByOwner sync.RWMutex
}

func (mock *historyRepoMock) GetByID(ctx context.Context, id int64, ownerID *int64) (*domain.HistoryEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("historyRepoMock.GetByIDFunc: method is nil but historyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      int64
		OwnerID *int64
	}{Ctx: ctx, ID: id, OwnerID: ownerID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id, ownerID)
}

func (mock *historyRepoMock) ListByOwner(ctx context.Context, ownerID *int64, limit, offset int) ([]domain.HistoryEntry, error) {
	if mock.ListByOwnerFunc == nil {
		panic("historyRepoMock.ListByOwnerFunc: method is nil but historyRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *int64
		Limit   int
		Offset  int
	}{Ctx: ctx, OwnerID: ownerID, Limit: limit, Offset: offset}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID, limit, offset)
}

func (mock *historyRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID *int64
	Limit   int
	Offset  int
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *historyRepoMock) CountByOwner(ctx context.Context, ownerID *int64) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("historyRepoMock.CountByOwnerFunc: method is nil but historyRepo.CountByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID *int64
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID)
}
