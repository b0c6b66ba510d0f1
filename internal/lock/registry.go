// Package lock provides the per-user mutual-exclusion registry the point
// service serializes balance mutations with.
package lock

import "sync"

// Registry maps a user id to its mutex, creating entries lazily. Get-or-create
// is atomic: concurrent first access for the same id yields exactly one mutex.
// Entries are never evicted; the registry grows with the set of users that
// have performed at least one write.
type Registry struct {
	locks sync.Map // int64 -> *sync.Mutex
}

func NewRegistry() *Registry { return &Registry{} }

// Get returns the mutex for id. Distinct ids never contend through the
// registry; there is no global lock on this path.
func (r *Registry) Get(id int64) *sync.Mutex {
	if mu, ok := r.locks.Load(id); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := r.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
