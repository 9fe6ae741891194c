package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/vidget/media-downloader/internal/model"
)

// ErrNotConfigured is returned by SignIn when the identity provider has no
// credentials at all. This is the one auth failure the UI surfaces
// synchronously instead of logging.
var ErrNotConfigured = errors.New("identity provider is not configured")

// Provider exposes the current identity and the sign-in/out actions
type Provider interface {
	// Subscribe registers a callback for identity changes. The callback is
	// also invoked once with the current identity (possibly nil) as soon as
	// the initial handshake finished. The returned function unsubscribes.
	Subscribe(callback func(*model.Identity)) (unsubscribe func())

	// IsLoading reports whether the initial handshake is still running
	IsLoading() bool

	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
}

// identityState is the shared subscriber bookkeeping of providers
type identityState struct {
	mu          sync.Mutex
	current     *model.Identity
	loading     bool
	subscribers map[int]func(*model.Identity)
	nextID      int
}

func newIdentityState() *identityState {
	return &identityState{
		loading:     true,
		subscribers: map[int]func(*model.Identity){},
	}
}

func (st *identityState) subscribe(callback func(*model.Identity)) func() {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.subscribers[id] = callback
	loading := st.loading
	current := st.current
	st.mu.Unlock()

	// Deliver the current state right away once the handshake settled
	if !loading {
		callback(current)
	}

	return func() {
		st.mu.Lock()
		delete(st.subscribers, id)
		st.mu.Unlock()
	}
}

func (st *identityState) isLoading() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.loading
}

// set stores the identity, marks the handshake settled, and fans the change
// out to every subscriber
func (st *identityState) set(identity *model.Identity) {
	st.mu.Lock()
	st.current = identity
	st.loading = false
	callbacks := make([]func(*model.Identity), 0, len(st.subscribers))
	for _, callback := range st.subscribers {
		callbacks = append(callbacks, callback)
	}
	st.mu.Unlock()

	for _, callback := range callbacks {
		callback(identity)
	}
}
