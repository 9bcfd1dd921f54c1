// Package session holds the client-side authentication state of one user
// and broadcasts its changes to subscribers.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	authsvc "github.com/heartmarshall/expense-tracker/internal/service/auth"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// State is the authentication state of a session.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Event is delivered to subscribers on every state change. User is nil
// when State is Unauthenticated.
type Event struct {
	State State
	User  *domain.User
}

type identityProvider interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error)
	Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	Logout(ctx context.Context, accessToken string) error
	ChangePassword(ctx context.Context, input authsvc.ChangePasswordInput) error
	DeleteAccount(ctx context.Context, input authsvc.DeleteAccountInput) error
}

// Lifecycle tracks one session: Unauthenticated -> Login -> Authenticated ->
// Logout or DeleteAccount -> Unauthenticated. It is safe for concurrent use.
type Lifecycle struct {
	provider identityProvider
	log      *slog.Logger
	now      func() time.Time

	mu            sync.RWMutex
	state         State
	user          *domain.User
	accessToken   string
	accessExpires time.Time
	refreshToken  string

	subsMu sync.Mutex
	subs   map[int]chan Event
	nextID int
}

// NewLifecycle creates an unauthenticated session.
func NewLifecycle(log *slog.Logger, provider identityProvider) *Lifecycle {
	return &Lifecycle{
		provider: provider,
		log:      log.With("component", "session"),
		now:      time.Now,
		subs:     make(map[int]chan Event),
	}
}

// Register creates an account. The session state does not change.
func (l *Lifecycle) Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error) {
	user, err := l.provider.Register(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("session.Register: %w", err)
	}
	return user, nil
}

// Login authenticates and moves the session to Authenticated.
// On failure the previous state is kept.
func (l *Lifecycle) Login(ctx context.Context, input authsvc.LoginInput) (*domain.User, error) {
	result, err := l.provider.Login(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("session.Login: %w", err)
	}

	l.authenticate(result)
	l.log.InfoContext(ctx, "session started", slog.String("user_id", result.User.ID.String()))
	return result.User, nil
}

// Restore re-establishes a session from a refresh token saved earlier.
func (l *Lifecycle) Restore(ctx context.Context, refreshToken string) (*domain.User, error) {
	result, err := l.provider.Refresh(ctx, authsvc.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("session.Restore: %w", err)
	}

	l.authenticate(result)
	l.log.InfoContext(ctx, "session restored", slog.String("user_id", result.User.ID.String()))
	return result.User, nil
}

// Logout ends the session. Local state is cleared even if the remote call
// fails; the remote error is still returned.
func (l *Lifecycle) Logout(ctx context.Context) error {
	l.mu.RLock()
	state := l.state
	l.mu.RUnlock()
	if state != Authenticated {
		return nil
	}

	var remoteErr error
	token, err := l.currentAccessToken(ctx)
	if err != nil {
		remoteErr = err
	} else if err := l.provider.Logout(ctx, token); err != nil {
		remoteErr = err
	}

	l.clear()

	if remoteErr != nil {
		l.log.WarnContext(ctx, "remote logout failed, local session cleared",
			slog.String("error", remoteErr.Error()))
		return fmt.Errorf("session.Logout: %w", remoteErr)
	}
	return nil
}

// ChangePassword changes the password of the signed-in user. The session
// stays Authenticated whatever the outcome.
func (l *Lifecycle) ChangePassword(ctx context.Context, input authsvc.ChangePasswordInput) error {
	authCtx, err := l.Context(ctx)
	if err != nil {
		return err
	}

	if err := l.provider.ChangePassword(authCtx, input); err != nil {
		return fmt.Errorf("session.ChangePassword: %w", err)
	}
	return nil
}

// DeleteAccount removes the signed-in user and ends the session.
// On failure the session stays Authenticated.
func (l *Lifecycle) DeleteAccount(ctx context.Context, input authsvc.DeleteAccountInput) error {
	authCtx, err := l.Context(ctx)
	if err != nil {
		return err
	}

	if err := l.provider.DeleteAccount(authCtx, input); err != nil {
		return fmt.Errorf("session.DeleteAccount: %w", err)
	}

	l.clear()
	return nil
}

// Current returns the state and, when authenticated, the user.
func (l *Lifecycle) Current() (State, *domain.User) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state, l.user
}

// RefreshToken returns the refresh token of the live session, or "".
func (l *Lifecycle) RefreshToken() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.refreshToken
}

// Context returns ctx carrying the identity of the signed-in user.
// Returns ErrUnauthorized when there is no session.
func (l *Lifecycle) Context(ctx context.Context) (context.Context, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.state != Authenticated {
		return nil, domain.ErrUnauthorized
	}

	ctx = ctxutil.WithUserID(ctx, l.user.ID)
	return ctxutil.WithAccessToken(ctx, l.accessToken), nil
}

// Subscribe returns a channel of state changes. The current state is
// delivered immediately. A slow reader only sees the latest state. The
// returned func unsubscribes and closes the channel.
func (l *Lifecycle) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 1)

	l.subsMu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	state, user := l.Current()
	ch <- Event{State: state, User: user}
	l.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.subsMu.Lock()
			delete(l.subs, id)
			close(ch)
			l.subsMu.Unlock()
		})
	}
}

// currentAccessToken returns an access token that has not expired yet,
// rotating tokens through the refresh token when needed.
func (l *Lifecycle) currentAccessToken(ctx context.Context) (string, error) {
	l.mu.RLock()
	token, expires, refresh := l.accessToken, l.accessExpires, l.refreshToken
	l.mu.RUnlock()

	if l.now().Before(expires) || refresh == "" {
		return token, nil
	}

	result, err := l.provider.Refresh(ctx, authsvc.RefreshInput{RefreshToken: refresh})
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	l.accessToken = result.AccessToken
	l.accessExpires = l.now().Add(time.Duration(result.ExpiresIn) * time.Second)
	l.refreshToken = result.RefreshToken
	l.mu.Unlock()

	return result.AccessToken, nil
}

func (l *Lifecycle) authenticate(result *authsvc.AuthResult) {
	l.mu.Lock()
	l.state = Authenticated
	l.user = result.User
	l.accessToken = result.AccessToken
	l.accessExpires = l.now().Add(time.Duration(result.ExpiresIn) * time.Second)
	l.refreshToken = result.RefreshToken
	l.mu.Unlock()

	l.broadcast(Event{State: Authenticated, User: result.User})
}

func (l *Lifecycle) clear() {
	l.mu.Lock()
	l.state = Unauthenticated
	l.user = nil
	l.accessToken = ""
	l.accessExpires = time.Time{}
	l.refreshToken = ""
	l.mu.Unlock()

	l.broadcast(Event{State: Unauthenticated})
}

// broadcast replaces any undelivered event with ev.
func (l *Lifecycle) broadcast(ev Event) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()

	for _, ch := range l.subs {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}
