package clock

import "time"

// IntervalScheduler is a FrameScheduler backed by a plain timer. It stands in
// for a display refresh callback when the host cannot provide one.
type IntervalScheduler struct {
	interval time.Duration
}

// NewIntervalScheduler returns a scheduler firing interval after each request.
func NewIntervalScheduler(interval time.Duration) *IntervalScheduler {
	if interval <= 0 {
		interval = FallbackInterval
	}
	return &IntervalScheduler{interval: interval}
}

// RequestFrame runs fn once on a timer goroutine.
func (s *IntervalScheduler) RequestFrame(fn func(now time.Time)) {
	time.AfterFunc(s.interval, func() {
		fn(time.Now())
	})
}
