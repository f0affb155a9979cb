package prompt

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

var _ promptRepo = &promptRepoMock{}

type promptRepoMock struct {
	CreateFunc      func(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error)
	GetByIDFunc     func(ctx context.Context, id, userID int64) (*domain.Prompt, error)
	ListByOwnerFunc func(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Prompt, error)
	ListSharedFunc  func(ctx context.Context, limit, offset int) ([]domain.Prompt, error)
	UpdateFunc      func(ctx context.Context, id, ownerID int64, params domain.PromptUpdate) (*domain.Prompt, error)
	DeleteFunc      func(ctx context.Context, id, ownerID int64) error
	SetTagsFunc     func(ctx context.Context, promptID int64, names []string) ([]domain.Tag, error)

	calls struct {
		SetTags []struct {
			Ctx      context.Context
			PromptID int64
			Names    []string
		}
	}
	lockSetTags sync.RWMutex
}

func (mock *promptRepoMock) Create(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error) {
	if mock.CreateFunc == nil {
		panic("promptRepoMock.CreateFunc: method is nil but promptRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, p)
}

func (mock *promptRepoMock) GetByID(ctx context.Context, id, userID int64) (*domain.Prompt, error) {
	if mock.GetByIDFunc == nil {
		panic("promptRepoMock.GetByIDFunc: method is nil but promptRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id, userID)
}

func (mock *promptRepoMock) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Prompt, error) {
	if mock.ListByOwnerFunc == nil {
		panic("promptRepoMock.ListByOwnerFunc: method is nil but promptRepo.ListByOwner was just called")
	}
	return mock.ListByOwnerFunc(ctx, ownerID, limit, offset)
}

func (mock *promptRepoMock) ListShared(ctx context.Context, limit, offset int) ([]domain.Prompt, error) {
	if mock.ListSharedFunc == nil {
		panic("promptRepoMock.ListSharedFunc: method is nil but promptRepo.ListShared was just called")
	}
	return mock.ListSharedFunc(ctx, limit, offset)
}

func (mock *promptRepoMock) Update(ctx context.Context, id, ownerID int64, params domain.PromptUpdate) (*domain.Prompt, error) {
	if mock.UpdateFunc == nil {
		panic("promptRepoMock.UpdateFunc: method is nil but promptRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, ownerID, params)
}

func (mock *promptRepoMock) Delete(ctx context.Context, id, ownerID int64) error {
	if mock.DeleteFunc == nil {
		panic("promptRepoMock.DeleteFunc: method is nil but promptRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id, ownerID)
}

func (mock *promptRepoMock) SetTags(ctx context.Context, promptID int64, names []string) ([]domain.Tag, error) {
	if mock.SetTagsFunc == nil {
		panic("promptRepoMock.SetTagsFunc: method is nil but promptRepo.SetTags was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PromptID int64
		Names    []string
	}{Ctx: ctx, PromptID: promptID, Names: names}
	mock.lockSetTags.Lock()
	mock.calls.SetTags = append(mock.calls.SetTags, callInfo)
	mock.lockSetTags.Unlock()
	return mock.SetTagsFunc(ctx, promptID, names)
}

func (mock *promptRepoMock) SetTagsCalls() []struct {
	Ctx      context.Context
	PromptID int64
	Names    []string
} {
	mock.lockSetTags.RLock()
	calls := mock.calls.SetTags
	mock.lockSetTags.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
