package repository

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Procedure builds the statement for a named call. The returned *gorm.DB is
// scanned into the caller's destination.
type Procedure func(tx *gorm.DB, params Params) (*gorm.DB, error)

type Registry struct {
	mu    sync.RWMutex
	procs map[string]Procedure
}

func NewRegistry() *Registry {
	return &Registry{procs: make(map[string]Procedure)}
}

// DefaultRegistry returns a registry holding the dashboard procedures.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, p := range builtinProcedures {
		// names are constants, they always validate
		_ = r.Register(name, p)
	}
	return r
}

// Register adds or replaces a procedure.
func (r *Registry) Register(name string, p Procedure) error {
	if !ValidIdentifier(name) {
		return fmt.Errorf("%w: procedure %q", ErrInvalidIdentifier, name)
	}
	if p == nil {
		return fmt.Errorf("repository: nil procedure %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs[name] = p
	return nil
}

func (r *Registry) Lookup(name string) (Procedure, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.procs[name]
	return p, ok
}
