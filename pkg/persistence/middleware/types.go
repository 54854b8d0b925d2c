package middleware

import "github.com/aretw0/najia/pkg/ports"

// Middleware allows wrapping a ReadingStore to add behavior.
type Middleware func(ports.ReadingStore) ports.ReadingStore

// Apply wraps store with each middleware; the first one listed is outermost.
func Apply(store ports.ReadingStore, mws ...Middleware) ports.ReadingStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
