// Package observable implements a latest-value broadcast variable.
package observable

import (
	"context"
	"sync"
)

// Reader is the read-only view handed to observers.
type Reader[T any] interface {
	Get() T
	Watch(ctx context.Context) <-chan T
}

// Value holds a value of type T and notifies watchers on every Set.
// Watchers never see history: a slow watcher skips straight to the newest
// value. A new watcher receives the current value immediately.
type Value[T any] struct {
	mu   sync.RWMutex
	v    T
	subs map[chan T]struct{}
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[chan T]struct{})}
}

func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.v
}

func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = v
	for ch := range o.subs {
		offer(ch, v)
	}
}

// Watch returns a channel carrying the current value followed by every
// later update. The channel is closed once ctx is done.
func (o *Value[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	o.mu.Lock()
	ch <- o.v
	o.subs[ch] = struct{}{}
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.mu.Lock()
		delete(o.subs, ch)
		close(ch)
		o.mu.Unlock()
	}()
	return ch
}

// offer replaces whatever is buffered in ch with v. Callers hold o.mu, so
// there is exactly one sender per channel at a time.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

var _ Reader[int] = (*Value[int])(nil)
