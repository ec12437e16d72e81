// Package capability defines nominal capability identities and the refinement catalog
// used by the wiring resolver.
//
// A capability is identified by its ID alone. Two capabilities whose Go handles share a
// method set are still different capabilities when their IDs differ; this is how a
// component exposes several same-shaped ports.
package capability

import (
	"fmt"
	"slices"
	"sync"

	"github.com/c360/semwire/errors"
)

// ID is the nominal identity of a capability.
type ID string

// String returns the capability id.
func (id ID) String() string {
	return string(id)
}

// Cardinality describes how many providers a slot accepts.
type Cardinality int

const (
	// Singular slots bind exactly once.
	Singular Cardinality = iota
	// List slots accept any number of providers, in bind order.
	List
)

// String returns a string representation of the cardinality
func (c Cardinality) String() string {
	switch c {
	case Singular:
		return "singular"
	case List:
		return "list"
	default:
		return "unknown"
	}
}

// Catalog records which capabilities refine which. A provider of a refined capability is
// acceptable wherever one of its ancestors is expected in a list slot.
//
// Capabilities never defined in a catalog are still valid; they simply refine nothing.
type Catalog struct {
	mu      sync.RWMutex
	extends map[ID][]ID
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{extends: make(map[ID][]ID)}
}

var defaultCatalog = NewCatalog()

// Default returns the process-wide catalog used by the default resolver.
func Default() *Catalog {
	return defaultCatalog
}

// Define registers id as refining each of parents. Defining an id twice, defining an
// empty id, or introducing a refinement cycle is an error.
func (c *Catalog) Define(id ID, parents ...ID) error {
	if id == "" {
		return errors.WrapInvalid(errors.ErrInvalidArgument, "Catalog", "Define", "capability id validation")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.extends[id]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("%w: capability %q already defined", errors.ErrDuplicateName, id),
			"Catalog", "Define", "duplicate capability check")
	}
	for _, p := range parents {
		if p == "" {
			return errors.WrapInvalid(errors.ErrInvalidArgument, "Catalog", "Define", "parent id validation")
		}
		if p == id || c.reachesLocked(p, id) {
			return errors.WrapInvalid(
				fmt.Errorf("%w: capability %q cannot refine %q (cycle)", errors.ErrInvalidArgument, id, p),
				"Catalog", "Define", "refinement cycle check")
		}
	}

	c.extends[id] = slices.Clone(parents)
	return nil
}

// MustDefine is Define for package-level capability declarations.
func (c *Catalog) MustDefine(id ID, parents ...ID) ID {
	if err := c.Define(id, parents...); err != nil {
		panic(err)
	}
	return id
}

// Parents returns the direct refinements declared for id.
func (c *Catalog) Parents(id ID) []ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.extends[id])
}

// Assignable reports whether a provider of capability from may stand in where to is
// expected: the ids are equal or from transitively refines to.
func (c *Catalog) Assignable(to, from ID) bool {
	if to == from {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reachesLocked(from, to)
}

// reachesLocked walks the refinement graph from start looking for goal.
func (c *Catalog) reachesLocked(start, goal ID) bool {
	visited := make(map[ID]bool)
	stack := []ID{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, p := range c.extends[cur] {
			if p == goal {
				return true
			}
			stack = append(stack, p)
		}
	}
	return false
}
