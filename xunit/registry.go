package xunit

import (
	"fmt"
	"sync"
)

// Registry maps identifiers to registered test-case types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
	order []*Type
}

// Default is the registry populated by Register.
var Default = NewRegistry()

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Register adds t to the Default registry and panics when t is invalid.
// It is meant to be called from package initialisation.
func Register(t *Type) *Type {
	return Default.MustRegister(t)
}

// Register validates t and adds it to the registry
func (r *Registry) Register(t *Type) error {
	if err := validate(t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[t.ID]; exists {
		return fmt.Errorf("type %s is already registered", t.ID)
	}
	r.types[t.ID] = t
	r.order = append(r.order, t)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(t *Type) *Type {
	if err := r.Register(t); err != nil {
		panic(fmt.Sprintf("xunit: %v", err))
	}
	return t
}

// Lookup resolves an identifier to a registered type.
func (r *Registry) Lookup(id string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[id]
	return t, ok
}

// Types returns all registered types in registration order.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]*Type, len(r.order))
	copy(types, r.order)
	return types
}

func validate(t *Type) error {
	if t == nil {
		return fmt.Errorf("cannot register a nil type")
	}
	if t.ID == "" {
		return fmt.Errorf("type identifier is required")
	}
	if !t.Abstract && t.New == nil {
		return fmt.Errorf("type %s is concrete but has no constructor", t.ID)
	}
	if t.Parent == t {
		return fmt.Errorf("type %s cannot extend itself", t.ID)
	}

	for i, m := range t.Methods {
		if m.Name == "" {
			return fmt.Errorf("type %s: method %d has no name", t.ID, i)
		}
		if m.Invoke == nil {
			return fmt.Errorf("type %s: method %s has no body", t.ID, m.Name)
		}
	}
	return nil
}
