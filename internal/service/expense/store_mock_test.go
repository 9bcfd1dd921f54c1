package expense

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/expense-tracker/internal/domain"
)

var _ store = &storeMock{}

type storeMock struct {
	CreateFunc    func(ctx context.Context, input CreateInput) (*domain.Expense, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc func(ctx context.Context) (int, error)
	ListFunc      func(ctx context.Context) ([]domain.Expense, error)
	UpdateFunc    func(ctx context.Context, input UpdateInput) (*domain.Expense, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input UpdateInput
		}
	}
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDeleteAll sync.RWMutex
	lockList      sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *storeMock) Create(ctx context.Context, input CreateInput) (*domain.Expense, error) {
	if mock.CreateFunc == nil {
		panic("storeMock.CreateFunc: method is nil but store.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *storeMock) CreateCalls() []struct {
	Ctx   context.Context
	Input CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *storeMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("storeMock.DeleteFunc: method is nil but store.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *storeMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *storeMock) DeleteAll(ctx context.Context) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("storeMock.DeleteAllFunc: method is nil but store.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *storeMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDeleteAll.RLock()
	calls = mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *storeMock) List(ctx context.Context) ([]domain.Expense, error) {
	if mock.ListFunc == nil {
		panic("storeMock.ListFunc: method is nil but store.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *storeMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *storeMock) Update(ctx context.Context, input UpdateInput) (*domain.Expense, error) {
	if mock.UpdateFunc == nil {
		panic("storeMock.UpdateFunc: method is nil but store.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *storeMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
