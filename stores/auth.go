package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// AuthStatus is three-valued on purpose: dependents must be able to tell
// "still resolving the session" apart from "resolved to anonymous".
type AuthStatus int

const (
	AuthLoading AuthStatus = iota
	AuthAnonymous
	AuthAuthenticated
)

// ErrInvalidCredentials is the only error Login surfaces for a rejected
// attempt; the upstream's specific text is not guaranteed.
var ErrInvalidCredentials = errors.New("login failed, check your credentials")

// Auth is the single source of truth for "who is logged in" within one
// visitor session.
type Auth struct {
	mu     sync.RWMutex
	api    *api.Client
	cookie string

	status AuthStatus
	user   *models.User
}

func NewAuth(client *api.Client, cookie string) *Auth {
	return &Auth{api: client, cookie: cookie, status: AuthLoading}
}

// Initialize asks the upstream who owns the session cookie. Any failure,
// network or 401 alike, resolves to anonymous rather than erroring.
func (a *Auth) Initialize(ctx context.Context) {
	user, err := a.api.Me(ctx, a.cookie)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.status = AuthAnonymous
		a.user = nil
		return
	}
	a.status = AuthAuthenticated
	a.user = user
}

// Login exchanges credentials for an upstream session. On success the
// user is stored and returned, along with the Set-Cookie headers the
// gateway must relay so the browser picks up the new session.
func (a *Auth) Login(ctx context.Context, email, password string) (*models.User, []string, error) {
	user, setCookies, err := a.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	a.mu.Lock()
	a.status = AuthAuthenticated
	a.user = user
	a.mu.Unlock()
	return user, setCookies, nil
}

// Logout clears local state unconditionally: even when the upstream call
// fails, the visitor must not stay locally authenticated.
func (a *Auth) Logout(ctx context.Context) []string {
	setCookies, err := a.api.Logout(ctx, a.cookie)
	if err != nil {
		setCookies = nil
	}

	a.mu.Lock()
	a.status = AuthAnonymous
	a.user = nil
	a.mu.Unlock()
	return setCookies
}

func (a *Auth) Status() AuthStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

// Resolved reports whether the initial session check has completed.
func (a *Auth) Resolved() bool {
	return a.Status() != AuthLoading
}

func (a *Auth) IsAuthenticated() bool {
	return a.Status() == AuthAuthenticated
}

// User returns the cached user record, or nil while loading or anonymous.
func (a *Auth) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}
