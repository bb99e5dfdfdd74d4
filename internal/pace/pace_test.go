package pace_test

import (
	"slices"
	"testing"
	"time"

	"deedles.dev/jumpq/internal/pace"
)

func TestForRetriesEarlyWakeup(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	s := pace.Sleeper{
		Now: func() time.Time { return now },
		Sleep: func(d time.Duration) {
			slept = append(slept, d)
			if len(slept) == 1 {
				// Spurious early wake-up on the first sleep.
				now = now.Add(d / 2)
				return
			}
			now = now.Add(d)
		},
	}

	s.For(100 * time.Millisecond)

	want := []time.Duration{100 * time.Millisecond, 50 * time.Millisecond}
	if !slices.Equal(slept, want) {
		t.Fatal(slept)
	}
}

func TestForNonPositive(t *testing.T) {
	s := pace.Sleeper{
		Now:   time.Now,
		Sleep: func(time.Duration) { t.Fatal("slept") },
	}
	s.For(0)
	s.For(-time.Millisecond)
}

func TestForRealClock(t *testing.T) {
	var s pace.Sleeper
	start := time.Now()
	s.For(time.Millisecond)
	if time.Since(start) < time.Millisecond {
		t.Fatal("woke up too early")
	}
}
