package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/service/expense"
)

var _ expenseService = &expenseServiceMock{}

type expenseServiceMock struct {
	CreateFunc    func(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	ListFunc      func(ctx context.Context) ([]domain.Expense, error)
	UpdateFunc    func(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input expense.CreateInput
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input expense.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteAll []struct {
			Ctx context.Context
		}
	}
	lockCreate    sync.RWMutex
	lockList      sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDeleteAll sync.RWMutex
}

func (mock *expenseServiceMock) Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error) {
	if mock.CreateFunc == nil {
		panic("expenseServiceMock.CreateFunc: method is nil but expenseService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input expense.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *expenseServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input expense.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input expense.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *expenseServiceMock) List(ctx context.Context) ([]domain.Expense, error) {
	if mock.ListFunc == nil {
		panic("expenseServiceMock.ListFunc: method is nil but expenseService.List was just called")
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

func (mock *expenseServiceMock) ListCalls() []struct {
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

func (mock *expenseServiceMock) Update(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error) {
	if mock.UpdateFunc == nil {
		panic("expenseServiceMock.UpdateFunc: method is nil but expenseService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input expense.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *expenseServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input expense.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input expense.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *expenseServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("expenseServiceMock.DeleteFunc: method is nil but expenseService.Delete was just called")
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

func (mock *expenseServiceMock) DeleteCalls() []struct {
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

func (mock *expenseServiceMock) DeleteAll(ctx context.Context) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("expenseServiceMock.DeleteAllFunc: method is nil but expenseService.DeleteAll was just called")
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

func (mock *expenseServiceMock) DeleteAllCalls() []struct {
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
