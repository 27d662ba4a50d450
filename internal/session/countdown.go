package session

import (
	"sync"
	"time"
)

// countdown is a cancellable repeating ticker driving the per-question
// clock. At most one countdown is armed per session at any time; arming a
// new one always stops the previous runner first.
type countdown struct {
	stop     chan struct{}
	stopOnce sync.Once
}

// newCountdown starts a goroutine invoking tick at the given interval until
// stopped.
func newCountdown(interval time.Duration, tick func()) *countdown {
	cd := &countdown{stop: make(chan struct{})}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-cd.stop:
				return
			case <-t.C:
				tick()
			}
		}
	}()

	return cd
}

// Stop halts the runner. Idempotent and safe to call from any goroutine,
// including from within a tick.
func (cd *countdown) Stop() {
	cd.stopOnce.Do(func() { close(cd.stop) })
}
