package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func next[T any](t *testing.T, a *Alarms[T]) T {
	t.Helper()
	select {
	case memo := <-a.C():
		return memo
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for alarm")
		var zero T
		return zero
	}
}

func TestAlarms_Fires(t *testing.T) {
	a := New[string]()

	a.Add(10*time.Millisecond, "ding")

	assert.Equal(t, "ding", next(t, a))
}

func TestAlarms_OrderByDeadline(t *testing.T) {
	a := New[int]()

	a.Add(80*time.Millisecond, 2)
	a.Add(10*time.Millisecond, 1)

	assert.Equal(t, 1, next(t, a))
	assert.Equal(t, 2, next(t, a))
}

func TestAlarms_ResetDropsPending(t *testing.T) {
	a := New[string]()
	a.Add(20*time.Millisecond, "stale")

	a.Reset()
	a.Add(50*time.Millisecond, "fresh")

	assert.Equal(t, "fresh", next(t, a))
	select {
	case memo := <-a.C():
		t.Fatalf("dropped alarm delivered: %q", memo)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestAlarms_ResetWithNothingPending(t *testing.T) {
	a := New[int]()

	a.Reset()
	a.Reset()
	a.Add(10*time.Millisecond, 7)

	assert.Equal(t, 7, next(t, a))
}

func TestAlarms_ConsumerReReadsStream(t *testing.T) {
	a := New[int]()
	before := a.C()

	a.Reset()

	assert.NotEqual(t, before, a.C())
}
