package auth

import (
	"context"
	"sync"
	"time"
)

var _ denylist = &denylistMock{}

type denylistMock struct {
	DenyFunc     func(ctx context.Context, tokenID string, until time.Time) error
	IsDeniedFunc func(ctx context.Context, tokenID string) (bool, error)

	calls struct {
		Deny []struct {
			Ctx     context.Context
			TokenID string
			Until   time.Time
		}
		IsDenied []struct {
			Ctx     context.Context
			TokenID string
		}
	}
	lockDeny     sync.RWMutex
	lockIsDenied sync.RWMutex
}

func (mock *denylistMock) Deny(ctx context.Context, tokenID string, until time.Time) error {
	if mock.DenyFunc == nil {
		panic("denylistMock.DenyFunc: method is nil but denylist.Deny was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TokenID string
		Until   time.Time
	}{
		Ctx:     ctx,
		TokenID: tokenID,
		Until:   until,
	}
	mock.lockDeny.Lock()
	mock.calls.Deny = append(mock.calls.Deny, callInfo)
	mock.lockDeny.Unlock()
	return mock.DenyFunc(ctx, tokenID, until)
}

func (mock *denylistMock) DenyCalls() []struct {
	Ctx     context.Context
	TokenID string
	Until   time.Time
} {
	var calls []struct {
		Ctx     context.Context
		TokenID string
		Until   time.Time
	}
	mock.lockDeny.RLock()
	calls = mock.calls.Deny
	mock.lockDeny.RUnlock()
	return calls
}

func (mock *denylistMock) IsDenied(ctx context.Context, tokenID string) (bool, error) {
	if mock.IsDeniedFunc == nil {
		panic("denylistMock.IsDeniedFunc: method is nil but denylist.IsDenied was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TokenID string
	}{
		Ctx:     ctx,
		TokenID: tokenID,
	}
	mock.lockIsDenied.Lock()
	mock.calls.IsDenied = append(mock.calls.IsDenied, callInfo)
	mock.lockIsDenied.Unlock()
	return mock.IsDeniedFunc(ctx, tokenID)
}

func (mock *denylistMock) IsDeniedCalls() []struct {
	Ctx     context.Context
	TokenID string
} {
	var calls []struct {
		Ctx     context.Context
		TokenID string
	}
	mock.lockIsDenied.RLock()
	calls = mock.calls.IsDenied
	mock.lockIsDenied.RUnlock()
	return calls
}
