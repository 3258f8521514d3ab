package engine

import (
	"sync"

	"github.com/gofrs/uuid"
)

// Registry is the process-wide, thread-safe set of named stacks. It is
// explicit and constructed, never a hidden package-level singleton.
type Registry struct {
	mu     sync.RWMutex
	stacks map[string]*Stack
}

func NewRegistry() *Registry {
	return &Registry{stacks: make(map[string]*Stack)}
}

func (r *Registry) register(name string, s *Stack) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stacks[name] = s
}

func (r *Registry) Lookup(name string) (*Stack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stacks[name]
	return s, ok
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stacks, name)
}

// NewName mints a random identifier for a stack or context snapshot that
// the caller doesn't name explicitly.
func NewName() string {
	id, err := uuid.NewV4()
	if err != nil {
		// uuid.NewV4 only fails on an exhausted entropy source; fall back to
		// the nil UUID rather than surfacing an error from what callers treat
		// as an infallible naming helper.
		return uuid.Nil.String()
	}
	return id.String()
}
