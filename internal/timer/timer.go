// Package timer implements the wall-clock countdown for timed tests.
//
// The timer runs on its own goroutine and reports through callbacks; the
// session layer decides what expiry means. Stopping is idempotent. A tick
// already past the running check may still invoke its callback after Stop,
// so callbacks must tolerate one late delivery; the session's idempotent
// finish does.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// Timer tracks elapsed time against an optional limit. The zero value is
// ready to use. Start may be called again after Stop; the generation counter
// keeps a superseded run from firing callbacks.
type Timer struct {
	mu         sync.Mutex
	generation int
	running    bool
	start      time.Time
	limit      time.Duration
	frozen     time.Duration
}

// Start begins counting from zero. onTick is invoked about once per second
// with the elapsed duration; onExpire is invoked once when elapsed reaches
// limit, after which ticking continues so overtime can be observed. A zero
// limit disables expiry. Either callback may be nil.
//
// Callbacks run on the timer goroutine, outside the timer's own lock, so
// they are allowed to call Stop.
func (t *Timer) Start(limit time.Duration, onTick func(elapsed time.Duration), onExpire func()) {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.running = true
	t.start = time.Now()
	t.limit = limit
	t.frozen = 0
	t.mu.Unlock()

	go t.run(gen, limit, onTick, onExpire)
}

func (t *Timer) run(gen int, limit time.Duration, onTick func(time.Duration), onExpire func()) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	expired := false
	for range ticker.C {
		t.mu.Lock()
		if gen != t.generation || !t.running {
			t.mu.Unlock()
			return
		}
		elapsed := time.Since(t.start)
		t.mu.Unlock()

		// Callbacks run outside the mutex so they may call Stop.
		if onTick != nil {
			onTick(elapsed)
		}
		if !expired && limit > 0 && elapsed >= limit {
			expired = true
			if onExpire != nil {
				onExpire()
			}
		}
	}
}

// Stop freezes the timer and returns the final elapsed duration. Calling
// Stop on a stopped or never-started timer returns the frozen value.
func (t *Timer) Stop() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		t.frozen = time.Since(t.start)
		t.running = false
	}
	return t.frozen
}

// Elapsed returns the current elapsed duration, frozen once stopped.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return time.Since(t.start)
	}
	return t.frozen
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Format renders d as HH:MM:SS with sub-second precision truncated.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
