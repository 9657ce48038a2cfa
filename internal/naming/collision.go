package naming

import (
	"fmt"
	"path/filepath"
	"sync"
)

// CollisionResolver tracks target paths claimed by sources and resolves
// duplicates by appending "_N" before the extension. Paths that must stay
// untouched are registered with [CollisionResolver.Reserve]. All methods are
// goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // target path → source path that owns it
	counters map[string]int    // requested target → next suffix counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Reserve marks path as occupied by itself, so no source can claim it.
func (cr *CollisionResolver) Reserve(path string) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	cr.owners[path] = path
}

// Resolve returns the final target for source. If requested is unclaimed
// (or already owned by source) it is returned as-is; otherwise the first
// free "stem_N.ext" variant is claimed.
func (cr *CollisionResolver) Resolve(source, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	owner, exists := cr.owners[requested]
	if !exists || owner == source {
		cr.owners[requested] = source
		return requested
	}

	dir := filepath.Dir(requested)
	stem, ext := SplitExt(filepath.Base(requested))

	counter := cr.counters[requested]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == source {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = source
			return candidate
		}
		counter++
	}
}
