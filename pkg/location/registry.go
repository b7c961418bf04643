package location

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyLocationID   = errors.New("location id cannot be empty")
	ErrDuplicateLocation = errors.New("location already registered")
	ErrRegistryFrozen    = errors.New("registry is frozen")
)

// Registry maps location identifiers to handlers. It is filled during
// startup and frozen once a Dispatcher takes ownership of it.
type Registry struct {
	handlers map[string]Handler
	frozen   bool
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler under id. Identifiers must be unique.
func (r *Registry) Register(id string, h Handler) error {
	if r.frozen {
		return fmt.Errorf("registering %q: %w", id, ErrRegistryFrozen)
	}
	if id == "" {
		return ErrEmptyLocationID
	}
	if h == nil {
		return fmt.Errorf("registering %q: handler cannot be nil", id)
	}
	if _, ok := r.handlers[id]; ok {
		return fmt.Errorf("registering %q: %w", id, ErrDuplicateLocation)
	}
	r.handlers[id] = h
	return nil
}

// RegisterFunc is shorthand for Register(id, HandlerFunc(fn)).
func (r *Registry) RegisterFunc(id string, fn func(s *Session) Result) error {
	return r.Register(id, HandlerFunc(fn))
}

func (r *Registry) Lookup(id string) (Handler, bool) {
	h, ok := r.handlers[id]
	return h, ok
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) Len() int {
	return len(r.handlers)
}

func (r *Registry) freeze() {
	r.frozen = true
}
