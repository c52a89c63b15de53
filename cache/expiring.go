// Package cache provides the small expiring lookup cache used for mentor
// directory queries. Entries expire after a fixed window; writes elsewhere do
// not purge them, Clear is the manual escape hatch.
package cache

import (
	"sync"
	"time"
)

// Clock is injected so expiry is testable without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type entry[T any] struct {
	value    T
	storedAt time.Time
}

type Expiring[T any] struct {
	ttl   time.Duration
	clock Clock

	mu      sync.RWMutex
	entries map[string]entry[T]
}

func New[T any](ttl time.Duration) *Expiring[T] {
	return NewWithClock[T](ttl, systemClock{})
}

func NewWithClock[T any](ttl time.Duration, clock Clock) *Expiring[T] {
	return &Expiring[T]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the cached value if present and not expired.
func (c *Expiring[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.expired(e) {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (c *Expiring[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, storedAt: c.clock.Now()}
}

func (c *Expiring[T]) IsValid(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return ok && !c.expired(e)
}

func (c *Expiring[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}

func (c *Expiring[T]) expired(e entry[T]) bool {
	return c.clock.Now().Sub(e.storedAt) >= c.ttl
}
