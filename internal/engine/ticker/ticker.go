// Package ticker schedules fixed-rate updates polled from the render loop.
// Everything GL-related runs on the main thread, so ticks are counted on
// demand instead of delivered from another goroutine.
package ticker

import (
	"fmt"
	"time"
)

// MaxCatchUp bounds how many ticks a single Poll reports after a stall.
const MaxCatchUp = 4

// Ticker fires at a fixed rate while running.
type Ticker struct {
	interval time.Duration
	next     time.Time
	running  bool
}

// New returns a stopped ticker firing hz times per second.
func New(hz float64) (*Ticker, error) {
	if hz <= 0 {
		return nil, fmt.Errorf("ticker rate must be positive, got %v", hz)
	}
	return &Ticker{interval: time.Duration(float64(time.Second) / hz)}, nil
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool { return t.running }

// Start schedules the first tick one interval after now. Starting a
// running ticker keeps its schedule.
func (t *Ticker) Start(now time.Time) {
	if t.running {
		return
	}
	t.running = true
	t.next = now.Add(t.interval)
}

// Stop halts the ticker.
func (t *Ticker) Stop() { t.running = false }

// Poll returns how many ticks fell due by now, at most MaxCatchUp.
// Ticks beyond the cap are dropped and the schedule restarts from now.
func (t *Ticker) Poll(now time.Time) int {
	if !t.running || now.Before(t.next) {
		return 0
	}
	n := int(now.Sub(t.next)/t.interval) + 1
	if n > MaxCatchUp {
		t.next = now.Add(t.interval)
		return MaxCatchUp
	}
	t.next = t.next.Add(time.Duration(n) * t.interval)
	return n
}
