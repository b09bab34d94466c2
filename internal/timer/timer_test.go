package timer

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{59 * time.Second, "00:00:59"},
		{60 * time.Second, "00:01:00"},
		{61*time.Second + 900*time.Millisecond, "00:01:01"},
		{3600 * time.Second, "01:00:00"},
		{3723 * time.Second, "01:02:03"},
		{10*time.Hour + 5*time.Minute + 9*time.Second, "10:05:09"},
		{-3 * time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.d); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestStopFreezesElapsed(t *testing.T) {
	var tm Timer
	tm.Start(0, nil, nil)
	if !tm.Running() {
		t.Fatal("timer not running after Start")
	}

	frozen := tm.Stop()
	if tm.Running() {
		t.Fatal("timer still running after Stop")
	}
	if tm.Elapsed() != frozen {
		t.Fatalf("Elapsed() = %v after Stop, want frozen %v", tm.Elapsed(), frozen)
	}

	// Idempotent: a second Stop returns the same frozen value.
	if again := tm.Stop(); again != frozen {
		t.Fatalf("second Stop returned %v, want %v", again, frozen)
	}
}

func TestStopWithoutStart(t *testing.T) {
	var tm Timer
	if got := tm.Stop(); got != 0 {
		t.Fatalf("Stop on unstarted timer = %v, want 0", got)
	}
	if got := tm.Elapsed(); got != 0 {
		t.Fatalf("Elapsed on unstarted timer = %v, want 0", got)
	}
}

func TestExpireFiresOnce(t *testing.T) {
	var tm Timer
	expired := make(chan struct{}, 2)
	tm.Start(time.Second, nil, func() { expired <- struct{}{} })
	defer tm.Stop()

	select {
	case <-expired:
	case <-time.After(3 * time.Second):
		t.Fatal("timer never expired")
	}

	// Ticking continues past expiry but onExpire must not repeat.
	select {
	case <-expired:
		t.Fatal("onExpire fired more than once")
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestRestartSupersedesOldRun(t *testing.T) {
	var tm Timer
	first := make(chan struct{}, 1)
	tm.Start(time.Second, nil, func() {
		select {
		case first <- struct{}{}:
		default:
		}
	})

	// Restart before the first run can expire; its expiry must not fire.
	tm.Start(time.Hour, nil, nil)
	defer tm.Stop()

	select {
	case <-first:
		t.Fatal("superseded timer run fired its expiry callback")
	case <-time.After(2500 * time.Millisecond):
	}
}

func TestOnTickReportsElapsed(t *testing.T) {
	var tm Timer
	ticks := make(chan time.Duration, 4)
	tm.Start(0, func(elapsed time.Duration) {
		select {
		case ticks <- elapsed:
		default:
		}
	}, nil)
	defer tm.Stop()

	select {
	case elapsed := <-ticks:
		if elapsed < 500*time.Millisecond {
			t.Fatalf("first tick reported %v, want about a second", elapsed)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no tick observed")
	}
}
