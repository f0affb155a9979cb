package limits

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

var _ libraryCounter = &libraryCounterMock{}

type libraryCounterMock struct {
	CountByOwnerFunc func(ctx context.Context, ownerID int64) (int, error)

	calls struct {
		CountByOwner []struct {
			Ctx     context.Context
			OwnerID int64
		}
	}
	lockCountByOwner sync.RWMutex
}

func (mock *libraryCounterMock) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("libraryCounterMock.CountByOwnerFunc: method is nil but libraryCounter.CountByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID)
}

var _ improvementCounter = &improvementCounterMock{}

type improvementCounterMock struct {
	CountByUserFunc func(ctx context.Context, userID int64) (int, error)

	calls struct {
		CountByUser []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockCountByUser sync.RWMutex
}

func (mock *improvementCounterMock) CountByUser(ctx context.Context, userID int64) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("improvementCounterMock.CountByUserFunc: method is nil but improvementCounter.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}
