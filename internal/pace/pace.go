// Package pace provides a small sleeping helper used to pace test
// goroutines. The queue itself never depends on it.
package pace

import "time"

// A Sleeper sleeps for at least a requested duration, going back to
// sleep after a spurious early wake-up until the deadline has passed.
// The zero value uses the real clock.
type Sleeper struct {
	// Now reports the current time. It defaults to [time.Now].
	Now func() time.Time

	// Sleep pauses the calling goroutine for up to the given
	// duration and may return early. It defaults to [time.Sleep].
	Sleep func(time.Duration)
}

// For sleeps until at least d has elapsed. Non-positive durations
// return immediately.
func (s *Sleeper) For(d time.Duration) {
	now := s.now()
	until := now.Add(d)
	for now.Before(until) {
		s.sleep(until.Sub(now))
		now = s.now()
	}
}

func (s *Sleeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Sleeper) sleep(d time.Duration) {
	if s.Sleep != nil {
		s.Sleep(d)
		return
	}
	time.Sleep(d)
}
