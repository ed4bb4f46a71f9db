// Package registry provides the per-worker processor instance cache.
package registry

import (
	"sync"

	"github.com/BranchIntl/tweener/algorithms"
	"github.com/BranchIntl/tweener/errors"
)

// Registry lazily constructs and caches processor instances keyed by
// algorithm name. Each worker owns exactly one Registry; instances are never
// shared across workers, so there is no cross-worker cache coherency concern.
type Registry struct {
	mu        sync.Mutex
	table     *algorithms.Table
	device    int
	instances map[string]algorithms.Processor
}

// NewRegistry creates a registry backed by the given constructor table.
// All processors it constructs are bound to the given device index.
func NewRegistry(table *algorithms.Table, device int) *Registry {
	return &Registry{
		table:     table,
		device:    device,
		instances: make(map[string]algorithms.Processor),
	}
}

// GetOrCreate returns the cached processor for an algorithm, constructing it
// on first request. Construction failures are returned to the caller and
// nothing is cached.
func (r *Registry) GetOrCreate(name string) (algorithms.Processor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.instances[name]; ok {
		return p, nil
	}

	ctor, ok := r.table.Lookup(name)
	if !ok {
		return nil, errors.NewProcessorError(name, "construct", errors.ErrUnknownAlgorithm)
	}

	p, err := ctor(r.device)
	if err != nil {
		return nil, errors.NewProcessorError(name, "construct", err)
	}

	r.instances[name] = p
	return p, nil
}

// Size returns the number of cached processor instances.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.instances)
}
