package shell

import (
	"context"
	"sync"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	authsvc "github.com/heartmarshall/expense-tracker/internal/service/auth"
	"github.com/heartmarshall/expense-tracker/internal/session"
)

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	RegisterFunc       func(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	LoginFunc          func(ctx context.Context, input authsvc.LoginInput) (*domain.User, error)
	RestoreFunc        func(ctx context.Context, refreshToken string) (*domain.User, error)
	LogoutFunc         func(ctx context.Context) error
	ChangePasswordFunc func(ctx context.Context, input authsvc.ChangePasswordInput) error
	DeleteAccountFunc  func(ctx context.Context, input authsvc.DeleteAccountInput) error
	CurrentFunc        func() (session.State, *domain.User)
	RefreshTokenFunc   func() string
	ContextFunc        func(ctx context.Context) (context.Context, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input authsvc.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input authsvc.LoginInput
		}
		Restore []struct {
			Ctx          context.Context
			RefreshToken string
		}
		Logout []struct {
			Ctx context.Context
		}
		ChangePassword []struct {
			Ctx   context.Context
			Input authsvc.ChangePasswordInput
		}
		DeleteAccount []struct {
			Ctx   context.Context
			Input authsvc.DeleteAccountInput
		}
		Current []struct{}
		RefreshToken []struct{}
		Context []struct {
			Ctx context.Context
		}
	}
	lockRegister       sync.RWMutex
	lockLogin          sync.RWMutex
	lockRestore        sync.RWMutex
	lockLogout         sync.RWMutex
	lockChangePassword sync.RWMutex
	lockDeleteAccount  sync.RWMutex
	lockCurrent        sync.RWMutex
	lockRefreshToken   sync.RWMutex
	lockContext        sync.RWMutex
}

func (mock *sessionManagerMock) Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("sessionManagerMock.RegisterFunc: method is nil but sessionManager.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *sessionManagerMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input authsvc.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authsvc.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Login(ctx context.Context, input authsvc.LoginInput) (*domain.User, error) {
	if mock.LoginFunc == nil {
		panic("sessionManagerMock.LoginFunc: method is nil but sessionManager.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *sessionManagerMock) LoginCalls() []struct {
	Ctx   context.Context
	Input authsvc.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authsvc.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Restore(ctx context.Context, refreshToken string) (*domain.User, error) {
	if mock.RestoreFunc == nil {
		panic("sessionManagerMock.RestoreFunc: method is nil but sessionManager.Restore was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		RefreshToken string
	}{
		Ctx:          ctx,
		RefreshToken: refreshToken,
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, refreshToken)
}

func (mock *sessionManagerMock) RestoreCalls() []struct {
	Ctx          context.Context
	RefreshToken string
} {
	var calls []struct {
		Ctx          context.Context
		RefreshToken string
	}
	mock.lockRestore.RLock()
	calls = mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("sessionManagerMock.LogoutFunc: method is nil but sessionManager.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *sessionManagerMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockLogout.RLock()
	calls = mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *sessionManagerMock) ChangePassword(ctx context.Context, input authsvc.ChangePasswordInput) error {
	if mock.ChangePasswordFunc == nil {
		panic("sessionManagerMock.ChangePasswordFunc: method is nil but sessionManager.ChangePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.ChangePasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockChangePassword.Lock()
	mock.calls.ChangePassword = append(mock.calls.ChangePassword, callInfo)
	mock.lockChangePassword.Unlock()
	return mock.ChangePasswordFunc(ctx, input)
}

func (mock *sessionManagerMock) ChangePasswordCalls() []struct {
	Ctx   context.Context
	Input authsvc.ChangePasswordInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authsvc.ChangePasswordInput
	}
	mock.lockChangePassword.RLock()
	calls = mock.calls.ChangePassword
	mock.lockChangePassword.RUnlock()
	return calls
}

func (mock *sessionManagerMock) DeleteAccount(ctx context.Context, input authsvc.DeleteAccountInput) error {
	if mock.DeleteAccountFunc == nil {
		panic("sessionManagerMock.DeleteAccountFunc: method is nil but sessionManager.DeleteAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.DeleteAccountInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteAccount.Lock()
	mock.calls.DeleteAccount = append(mock.calls.DeleteAccount, callInfo)
	mock.lockDeleteAccount.Unlock()
	return mock.DeleteAccountFunc(ctx, input)
}

func (mock *sessionManagerMock) DeleteAccountCalls() []struct {
	Ctx   context.Context
	Input authsvc.DeleteAccountInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authsvc.DeleteAccountInput
	}
	mock.lockDeleteAccount.RLock()
	calls = mock.calls.DeleteAccount
	mock.lockDeleteAccount.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Current() (session.State, *domain.User) {
	if mock.CurrentFunc == nil {
		panic("sessionManagerMock.CurrentFunc: method is nil but sessionManager.Current was just called")
	}
	callInfo := struct{}{}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc()
}

func (mock *sessionManagerMock) CurrentCalls() []struct{} {
	var calls []struct{}
	mock.lockCurrent.RLock()
	calls = mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

func (mock *sessionManagerMock) RefreshToken() string {
	if mock.RefreshTokenFunc == nil {
		panic("sessionManagerMock.RefreshTokenFunc: method is nil but sessionManager.RefreshToken was just called")
	}
	callInfo := struct{}{}
	mock.lockRefreshToken.Lock()
	mock.calls.RefreshToken = append(mock.calls.RefreshToken, callInfo)
	mock.lockRefreshToken.Unlock()
	return mock.RefreshTokenFunc()
}

func (mock *sessionManagerMock) RefreshTokenCalls() []struct{} {
	var calls []struct{}
	mock.lockRefreshToken.RLock()
	calls = mock.calls.RefreshToken
	mock.lockRefreshToken.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Context(ctx context.Context) (context.Context, error) {
	if mock.ContextFunc == nil {
		panic("sessionManagerMock.ContextFunc: method is nil but sessionManager.Context was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockContext.Lock()
	mock.calls.Context = append(mock.calls.Context, callInfo)
	mock.lockContext.Unlock()
	return mock.ContextFunc(ctx)
}

func (mock *sessionManagerMock) ContextCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockContext.RLock()
	calls = mock.calls.Context
	mock.lockContext.RUnlock()
	return calls
}
