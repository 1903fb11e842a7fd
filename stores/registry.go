package stores

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Rolamaalouf/Mishatote-front/api"
)

// Session bundles the store pair owned by one visitor. Stores are
// explicit objects handed to handlers, not ambient globals.
type Session struct {
	Auth *Auth
	Cart *Cart

	initOnce sync.Once
	lastSeen time.Time
}

// EnsureInit runs the one-time session check so dependents can rely on
// Auth being past the loading state after the first request.
func (s *Session) EnsureInit(ctx context.Context) {
	s.initOnce.Do(func() {
		s.Auth.Initialize(ctx)
	})
}

// Registry hands out one Session per upstream session cookie and evicts
// idle ones.
type Registry struct {
	mu         sync.Mutex
	api        *api.Client
	ttl        time.Duration
	sessions   map[string]*Session
	evictHooks []func(cookie string)
}

func NewRegistry(client *api.Client, ttl time.Duration) *Registry {
	return &Registry{
		api:      client,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) newSession(cookie string) *Session {
	auth := NewAuth(r.api, cookie)
	return &Session{
		Auth:     auth,
		Cart:     NewCart(r.api, auth, cookie),
		lastSeen: time.Now(),
	}
}

// Session returns the store pair for the cookie, creating it lazily.
// Visitors without a cookie get a throwaway pair that is never retained.
func (r *Registry) Session(cookie string) *Session {
	if cookie == "" {
		return r.newSession("")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[cookie]
	if !ok {
		s = r.newSession(cookie)
		r.sessions[cookie] = s
	}
	s.lastSeen = time.Now()
	return s
}

// OnEvict registers a hook called with the cookie whenever a session is
// dropped or swept, so per-session state held outside the registry (the
// checkout flows) dies together with the session instead of outliving it.
func (r *Registry) OnEvict(fn func(cookie string)) {
	r.mu.Lock()
	r.evictHooks = append(r.evictHooks, fn)
	r.mu.Unlock()
}

// Drop discards the stores for a cookie, e.g. after logout.
func (r *Registry) Drop(cookie string) {
	r.mu.Lock()
	delete(r.sessions, cookie)
	hooks := r.evictHooks
	r.mu.Unlock()

	for _, fn := range hooks {
		fn(cookie)
	}
}

// Sweep evicts sessions idle longer than the TTL. Run as a goroutine.
func (r *Registry) Sweep(interval time.Duration) {
	for {
		time.Sleep(interval)

		cutoff := time.Now().Add(-r.ttl)
		r.mu.Lock()
		var evicted []string
		for cookie, s := range r.sessions {
			if s.lastSeen.Before(cutoff) {
				delete(r.sessions, cookie)
				evicted = append(evicted, cookie)
			}
		}
		remaining := len(r.sessions)
		hooks := r.evictHooks
		r.mu.Unlock()

		for _, cookie := range evicted {
			for _, fn := range hooks {
				fn(cookie)
			}
		}

		if len(evicted) > 0 {
			log.Printf("🗑️ Evicted %d idle session(s), %d remaining", len(evicted), remaining)
		}
	}
}
