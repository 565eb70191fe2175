package chase

import (
	"context"
	"sync"
)

// Topic holds the latest value of some engine state and pushes every new
// value to its subscribers. A subscriber that joins late receives the
// current value immediately, never the history before it.
//
// Publishing happens on the engine's goroutine. Subscribe, Latest and Watch
// are safe to call from anywhere. A subscriber sees values in publish
// order; callbacks must not subscribe to the topic that calls them.
type Topic[T any] struct {
	deliver sync.Mutex // serializes deliveries, held outside mu

	mu     sync.Mutex
	latest T
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

func newTopic[T any](initial T) *Topic[T] {
	return &Topic[T]{latest: initial}
}

// Latest returns the most recently published value.
func (t *Topic[T]) Latest() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}

// Subscribe registers fn and calls it right away with the latest value.
// Later values are delivered synchronously, in subscription order.
// The returned function removes the subscription.
func (t *Topic[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	// A publish racing with us either lands before the registration, and
	// its value is the one we deliver, or waits until fn has seen it.
	t.deliver.Lock()
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscription[T]{id: id, fn: fn})
	latest := t.latest
	t.mu.Unlock()

	fn(latest)
	t.deliver.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			for i, s := range t.subs {
				if s.id == id {
					t.subs = append(t.subs[:i], t.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Watch returns a channel carrying the latest value, for observers on
// other goroutines. The channel holds at most one value; a slow reader
// skips straight to the newest one. It is closed once ctx is done.
func (t *Topic[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	var mu sync.Mutex
	closed := false
	unsubscribe := t.Subscribe(func(v T) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- v:
		default:
			// Buffer full, drop the stale value
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}

// publish stores v and hands it to every subscriber.
func (t *Topic[T]) publish(v T) {
	t.deliver.Lock()
	defer t.deliver.Unlock()

	t.mu.Lock()
	t.latest = v
	subs := make([]subscription[T], len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}
