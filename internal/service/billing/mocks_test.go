package billing

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, id int64, params domain.UserUpdate) (*domain.User, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Params domain.UserUpdate
		}
	}
	lockGetByEmail sync.RWMutex
	lockUpdate     sync.RWMutex
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

var _ customerResolver = &customerResolverMock{}

type customerResolverMock struct {
	EmailByCustomerIDFunc func(ctx context.Context, customerID string) (string, error)

	calls struct {
		EmailByCustomerID []struct {
			Ctx        context.Context
			CustomerID string
		}
	}
	lockEmailByCustomerID sync.RWMutex
}

func (mock *customerResolverMock) EmailByCustomerID(ctx context.Context, customerID string) (string, error) {
	if mock.EmailByCustomerIDFunc == nil {
		panic("customerResolverMock.EmailByCustomerIDFunc: method is nil but customerResolver.EmailByCustomerID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID string
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockEmailByCustomerID.Lock()
	mock.calls.EmailByCustomerID = append(mock.calls.EmailByCustomerID, callInfo)
	mock.lockEmailByCustomerID.Unlock()
	return mock.EmailByCustomerIDFunc(ctx, customerID)
}
