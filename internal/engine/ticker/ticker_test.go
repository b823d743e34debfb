package ticker

import (
	"testing"
	"time"
)

func TestNewRejectsBadRates(t *testing.T) {
	for _, hz := range []float64{0, -21} {
		if _, err := New(hz); err == nil {
			t.Errorf("New(%v): expected error", hz)
		}
	}
}

func TestInterval(t *testing.T) {
	tk, err := New(20)
	if err != nil {
		t.Fatal(err)
	}
	if got := tk.Interval(); got != 50*time.Millisecond {
		t.Errorf("Interval: got %v, want 50ms", got)
	}
}

func TestPoll(t *testing.T) {
	tk, _ := New(10) // 100ms
	t0 := time.Unix(1000, 0)

	if n := tk.Poll(t0.Add(time.Second)); n != 0 {
		t.Errorf("stopped ticker: got %d ticks, want 0", n)
	}

	tk.Start(t0)
	tests := []struct {
		at   time.Duration
		want int
	}{
		{50 * time.Millisecond, 0},
		{100 * time.Millisecond, 1},
		{150 * time.Millisecond, 0},
		{420 * time.Millisecond, 3},
		{499 * time.Millisecond, 0},
		{500 * time.Millisecond, 1},
	}
	for _, tt := range tests {
		if got := tk.Poll(t0.Add(tt.at)); got != tt.want {
			t.Errorf("Poll at %v: got %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestPollCatchUpLimit(t *testing.T) {
	tk, _ := New(10)
	t0 := time.Unix(1000, 0)
	tk.Start(t0)

	stall := t0.Add(10 * time.Second)
	if got := tk.Poll(stall); got != MaxCatchUp {
		t.Errorf("after stall: got %d, want %d", got, MaxCatchUp)
	}
	if got := tk.Poll(stall.Add(99 * time.Millisecond)); got != 0 {
		t.Errorf("right after stall: got %d, want 0", got)
	}
	if got := tk.Poll(stall.Add(100 * time.Millisecond)); got != 1 {
		t.Errorf("one interval after stall: got %d, want 1", got)
	}
}

func TestStartStop(t *testing.T) {
	tk, _ := New(10)
	t0 := time.Unix(1000, 0)

	if tk.Running() || tk.Poll(t0) != 0 {
		t.Error("new ticker should be stopped")
	}
	tk.Start(t0)
	tk.Start(t0.Add(50 * time.Millisecond)) // keeps schedule
	if !tk.Running() {
		t.Error("Running: got false after Start")
	}
	if got := tk.Poll(t0.Add(99 * time.Millisecond)); got != 0 {
		t.Errorf("before first tick: got %d, want 0", got)
	}
	if got := tk.Poll(t0.Add(100 * time.Millisecond)); got != 1 {
		t.Errorf("first tick: got %d, want 1", got)
	}

	tk.Stop()
	if tk.Running() || tk.Poll(t0.Add(time.Second)) != 0 {
		t.Error("stopped ticker still ticking")
	}
}
