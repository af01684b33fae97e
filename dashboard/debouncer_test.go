package dashboard

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerRunsOnlyTheLastCall(t *testing.T) {
	clock := newFakeClock()
	debouncer := NewDebouncer(clock, 800*time.Millisecond)
	var fired []int

	for i := 1; i <= 3; i++ {
		value := i
		debouncer.Trigger(func() { fired = append(fired, value) })
		clock.Advance(500 * time.Millisecond)
	}
	assert.Empty(t, fired)
	assert.True(t, debouncer.Pending())

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []int{3}, fired)
	assert.False(t, debouncer.Pending())
	assert.Equal(t, 0, clock.Pending())
}

func TestDebouncerStop(t *testing.T) {
	clock := newFakeClock()
	debouncer := NewDebouncer(clock, time.Second)
	called := false

	debouncer.Trigger(func() { called = true })
	debouncer.Stop()
	clock.Advance(2 * time.Second)

	assert.False(t, called)
	assert.False(t, debouncer.Pending())
}

func TestDebouncerWithSystemClock(t *testing.T) {
	debouncer := NewDebouncer(SystemClock{}, 20*time.Millisecond)
	var calls int32

	for i := 0; i < 5; i++ {
		debouncer.Trigger(func() { atomic.AddInt32(&calls, 1) })
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
