package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, e domain.Event) error

	calls struct {
		Publish []struct {
			Ctx context.Context
			E   domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, e domain.Event) error {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Event
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, e)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Ctx context.Context
	E   domain.Event
} {
	var calls []struct {
		Ctx context.Context
		E   domain.Event
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
