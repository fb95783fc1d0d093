package framework

import (
	"iter"
	"slices"
	"sync"
)

// Registry is an ordered, append-only catalog of declared tests.
//
// Tests are expected to be added during program initialization, before anything reads the
// registry, so it does no locking of its own.
type Registry struct {
	tests []*Info
}

var (
	registered     *Registry
	registeredOnce sync.Once
)

// Registered returns the process-wide registry that Declare, DeclareFunc and DeclareFixture
// add to. It is created on first use and lives until the process exits.
func Registered() *Registry {
	registeredOnce.Do(func() {
		registered = NewRegistry()
	})
	return registered
}

// NewRegistry creates an empty registry that is independent of the process-wide one.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends info to the catalog. It does not check for duplicates.
func (r *Registry) Add(info *Info) {
	r.tests = append(r.tests, info)
}

// Tests returns the catalog in registration order. The slice is the registry's own storage
// and must not be modified.
func (r *Registry) Tests() []*Info {
	return r.tests
}

// All iterates over the catalog in registration order.
func (r *Registry) All() iter.Seq[*Info] {
	return slices.Values(r.tests)
}
