package dashboard

import (
	"sync"
	"time"
)

// Debouncer runs only the last function handed to Trigger, once the delay has
// passed without another call.
type Debouncer struct {
	clock Clock
	delay time.Duration

	mu         sync.Mutex
	timer      Timer
	generation uint64
}

func NewDebouncer(clock Clock, delay time.Duration) *Debouncer {
	return &Debouncer{clock: clock, delay: delay}
}

func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	generation := d.generation
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// a timer that already fired cannot be stopped, so a stale one checks in here
		if generation != d.generation {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		f()
	})
}

// Stop drops the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
