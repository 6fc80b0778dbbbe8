// Package timer provides a relative-deadline alarm service: schedule a
// memo for one-shot delivery after a delay, or drop everything pending
// in one call. The game uses it to drive phase transitions.
package timer

import (
	"sync"
	"time"
)

// generation is one epoch of alarms. Reset replaces the whole
// generation, so a pending alarm can never deliver into the new one.
type generation[T any] struct {
	ch     chan T
	cancel chan struct{}
}

// Alarms schedules one-shot deliveries of memos on its stream. Safe
// for concurrent use, though the intended shape is a single consumer
// that also calls Reset at phase boundaries.
type Alarms[T any] struct {
	mu  sync.Mutex
	gen *generation[T]
}

// New returns an empty alarm service.
func New[T any]() *Alarms[T] {
	return &Alarms[T]{gen: &generation[T]{
		ch:     make(chan T),
		cancel: make(chan struct{}),
	}}
}

// Add schedules memo for delivery on C after delay. An alarm scheduled
// before a Reset never fires after it.
func (a *Alarms[T]) Add(delay time.Duration, memo T) {
	a.mu.Lock()
	gen := a.gen
	a.mu.Unlock()

	go func() {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-gen.cancel:
			return
		}
		select {
		case gen.ch <- memo:
		case <-gen.cancel:
		}
	}()
}

// Reset atomically drops all pending alarms by replacing the stream.
// Callers must re-read C after a Reset.
func (a *Alarms[T]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	close(a.gen.cancel)
	a.gen = &generation[T]{
		ch:     make(chan T),
		cancel: make(chan struct{}),
	}
}

// C returns the current delivery stream. Re-read it on every loop
// iteration; Reset swaps it out.
func (a *Alarms[T]) C() <-chan T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen.ch
}
