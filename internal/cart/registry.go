package cart

import (
	"fmt"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// RegistryOptions configures the in-memory cart session registry.
type RegistryOptions struct {
	IdleTTL         time.Duration
	CleanupInterval time.Duration
	Seed            func() []LineItem
	// Listeners builds the listeners attached to a freshly opened session.
	Listeners func(sessionID string) []Listener
	OnOpen    func(sessionID string)
	OnClose   func(sessionID string)
}

type session struct {
	mu     sync.Mutex
	engine *Engine
}

// Registry keeps one engine per cart session and discards it after IdleTTL without access.
type Registry struct {
	mu        sync.Mutex
	sessions  *gocache.Cache
	seed      func() []LineItem
	listeners func(sessionID string) []Listener
	onOpen    func(sessionID string)
}

func NewRegistry(opts RegistryOptions) *Registry {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 30 * time.Minute
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = 5 * time.Minute
	}
	if opts.Seed == nil {
		opts.Seed = DefaultSeed
	}
	store := gocache.New(opts.IdleTTL, opts.CleanupInterval)
	if opts.OnClose != nil {
		onClose := opts.OnClose
		store.OnEvicted(func(key string, _ interface{}) {
			onClose(key)
		})
	}
	return &Registry{
		sessions:  store,
		seed:      opts.Seed,
		listeners: opts.Listeners,
		onOpen:    opts.OnOpen,
	}
}

// With runs fn against the session's engine while holding the session lock,
// opening a seeded cart if none exists.
func (r *Registry) With(sessionID string, fn func(*Engine) error) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	sess, err := r.open(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.engine)
}

func (r *Registry) open(sessionID string) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.sessions.Get(sessionID); ok {
		sess := cached.(*session)
		r.sessions.SetDefault(sessionID, sess)
		return sess, nil
	}
	// An expired entry the janitor has not collected yet is still stored; deleting it
	// fires the close hook before the session is reopened.
	r.sessions.Delete(sessionID)

	var listeners []Listener
	if r.listeners != nil {
		listeners = r.listeners(sessionID)
	}
	engine, err := NewEngine(r.seed(), listeners...)
	if err != nil {
		return nil, fmt.Errorf("seed cart: %w", err)
	}
	sess := &session{engine: engine}
	r.sessions.SetDefault(sessionID, sess)
	if r.onOpen != nil {
		r.onOpen(sessionID)
	}
	return sess, nil
}

// Drop discards the session's cart immediately.
func (r *Registry) Drop(sessionID string) {
	r.sessions.Delete(sessionID)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.ItemCount()
}
