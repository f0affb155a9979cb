package auth

import "sync"

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	IssueFunc func(userID int64) (string, error)

	calls struct {
		Issue []struct {
			UserID int64
		}
	}
	lockIssue sync.RWMutex
}

func (mock *tokenIssuerMock) Issue(userID int64) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenIssuerMock.IssueFunc: method is nil but tokenIssuer.Issue was just called")
	}
	callInfo := struct {
		UserID int64
	}{UserID: userID}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID)
}

func (mock *tokenIssuerMock) IssueCalls() []struct {
	UserID int64
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}
