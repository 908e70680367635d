package resilience

import (
	"errors"
	"sync"
)

// ErrCallPanicked is returned to callers that waited on a call whose
// function panicked.
var ErrCallPanicked = errors.New("grouped call panicked")

// Group collapses concurrent calls that share a key into one execution.
// The zero value is ready to use.
type Group[V any] struct {
	mu    sync.Mutex
	calls map[string]*call[V]
}

type call[V any] struct {
	wg   sync.WaitGroup
	val  V
	err  error
	dups int
}

// Do runs fn once per in-flight key. Callers arriving while fn runs wait
// and get the same result; shared reports whether that happened.
func (g *Group[V]) Do(key string, fn func() (V, error)) (V, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[V])
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call[V]{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	shared := g.run(key, c, fn)
	return c.val, c.err, shared
}

// Waiters reports how many callers are blocked on key's in-flight call.
func (g *Group[V]) Waiters(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.calls[key]; ok {
		return c.dups
	}
	return 0
}

// run always releases waiters and forgets key, even when fn panics.
func (g *Group[V]) run(key string, c *call[V], fn func() (V, error)) (shared bool) {
	returned := false
	defer func() {
		if !returned {
			c.err = ErrCallPanicked
		}
		g.mu.Lock()
		delete(g.calls, key)
		shared = c.dups > 0
		g.mu.Unlock()
		c.wg.Done()
	}()

	c.val, c.err = fn()
	returned = true
	return false
}
