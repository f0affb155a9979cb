package auth

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleIDFunc func(ctx context.Context, googleID string) (*domain.User, error)
	CreateFunc        func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFunc        func(ctx context.Context, id int64, params domain.UserUpdate) (*domain.User, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByGoogleID []struct {
			Ctx      context.Context
			GoogleID string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Params domain.UserUpdate
		}
	}
	lockGetByEmail    sync.RWMutex
	lockGetByGoogleID sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	if mock.GetByGoogleIDFunc == nil {
		panic("userRepoMock.GetByGoogleIDFunc: method is nil but userRepo.GetByGoogleID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		GoogleID string
	}{Ctx: ctx, GoogleID: googleID}
	mock.lockGetByGoogleID.Lock()
	mock.calls.GetByGoogleID = append(mock.calls.GetByGoogleID, callInfo)
	mock.lockGetByGoogleID.Unlock()
	return mock.GetByGoogleIDFunc(ctx, googleID)
}

func (mock *userRepoMock) GetByGoogleIDCalls() []struct {
	Ctx      context.Context
	GoogleID string
} {
	mock.lockGetByGoogleID.RLock()
	calls := mock.calls.GetByGoogleID
	mock.lockGetByGoogleID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id int64, params domain.UserUpdate) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Params domain.UserUpdate
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Params domain.UserUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
