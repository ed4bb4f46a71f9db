// Package algorithms defines the processor contract for interpolation
// engines and the named constructor table workers draw from.
package algorithms

import (
	"sync"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/frame"
)

// Processor is a stateful interpolation engine. Instances are expensive to
// construct and cheap to reuse; they are owned by a single worker and are not
// required to be safe for concurrent use.
type Processor interface {
	// Process synthesizes the frame between a and b. Both inputs have
	// identical dimensions; the output matches them.
	Process(a, b *frame.Frame) (*frame.Frame, error)
}

// Constructor builds a processor bound to the given device index.
type Constructor func(device int) (Processor, error)

// Table maps algorithm names to constructors. A Table is safe for concurrent
// use; per-worker instance caching lives in the registry package, not here.
type Table struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewTable creates an empty constructor table.
func NewTable() *Table {
	return &Table{constructors: make(map[string]Constructor)}
}

// Register adds a constructor for an algorithm name.
func (t *Table) Register(name string, ctor Constructor) error {
	if name == "" {
		return errors.ErrEmptyAlgorithm
	}
	if ctor == nil {
		return errors.ErrNilConstructor
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.constructors[name] = ctor
	return nil
}

// Lookup retrieves a constructor by algorithm name.
func (t *Table) Lookup(name string) (Constructor, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ctor, ok := t.constructors[name]
	return ctor, ok
}

// Names returns all registered algorithm names.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.constructors))
	for name := range t.constructors {
		names = append(names, name)
	}
	return names
}
