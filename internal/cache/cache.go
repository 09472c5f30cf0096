// Package cache is a read-through, argument-keyed cache for the
// external lookups. Entries never expire; the data is treated as static
// for the life of the process, so the only invalidation is a restart.
package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader caches successful fetches by key and collapses concurrent
// fetches of the same key into one call. Failed fetches are not cached;
// recomputing is always safe.
type Loader[V any] struct {
	fetch func(ctx context.Context, key string) (V, error)

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]V
}

func NewLoader[V any](fetch func(ctx context.Context, key string) (V, error)) *Loader[V] {
	return &Loader[V]{
		fetch:   fetch,
		entries: make(map[string]V),
	}
}

func (l *Loader[V]) Get(ctx context.Context, key string) (V, error) {
	l.mu.RLock()
	v, ok := l.entries[key]
	l.mu.RUnlock()
	if ok {
		return v, nil
	}

	out, err, _ := l.group.Do(key, func() (any, error) {
		v, err := l.fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.entries[key] = v
		l.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out.(V), nil
}

// Len reports how many keys are cached.
func (l *Loader[V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
