package selector

import (
	"sync"
	"time"
)

// debouncer runs only the most recent fn once interval has passed without another Call.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	running sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// Call schedules fn, replacing any pending call. It returns false once stopped.
func (d *debouncer) Call(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		if !d.begin() {
			return
		}
		defer d.running.Done()
		fn()
	})
	return true
}

func (d *debouncer) begin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}
	d.running.Add(1)
	return true
}

// Stop drops any pending call and waits for a call that already started.
func (d *debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.running.Wait()
}
