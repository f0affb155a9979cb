package auth

import (
	"context"
	"sync"

	"github.com/promptmixer/promptmixer-backend/internal/auth"
)

var _ googleVerifier = &googleVerifierMock{}

type googleVerifierMock struct {
	VerifyFunc func(ctx context.Context, token string) (*auth.GoogleIdentity, error)

	calls struct {
		Verify []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *googleVerifierMock) Verify(ctx context.Context, token string) (*auth.GoogleIdentity, error) {
	if mock.VerifyFunc == nil {
		panic("googleVerifierMock.VerifyFunc: method is nil but googleVerifier.Verify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, token)
}

func (mock *googleVerifierMock) VerifyCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
