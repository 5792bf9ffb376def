// Package clock drives repeated progress evaluation on the host's frame callback.
package clock

import (
	"sync/atomic"
	"time"

	"github.com/xvierd/prank-cli/internal/ports"
)

// FallbackInterval paces ticks when the host has no frame scheduler.
const FallbackInterval = 16 * time.Millisecond

// Handle identifies one started clock. It doubles as the cancellation token
// captured by every frame callback scheduled for it.
type Handle struct {
	id        uint64
	cancelled atomic.Bool
}

// ID returns the sequence number of the handle within its clock.
func (h *Handle) ID() uint64 {
	return h.id
}

// Cancelled reports whether Cancel was called for this handle.
func (h *Handle) Cancelled() bool {
	return h.cancelled.Load()
}

// Clock schedules tick callbacks, one frame at a time.
type Clock struct {
	scheduler ports.FrameScheduler
	now       func() time.Time
	seq       atomic.Uint64
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow overrides the time source used to stamp the start of a run.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// New creates a clock on top of scheduler. A nil scheduler falls back to a
// fixed-interval timer.
func New(scheduler ports.FrameScheduler, opts ...Option) *Clock {
	if scheduler == nil {
		scheduler = NewIntervalScheduler(FallbackInterval)
	}
	c := &Clock{
		scheduler: scheduler,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins calling onTick with the time elapsed since Start, once per frame,
// until the returned handle is cancelled.
func (c *Clock) Start(onTick func(elapsed time.Duration)) *Handle {
	h := &Handle{id: c.seq.Add(1)}
	origin := c.now()
	var last time.Duration

	var frame func(now time.Time)
	frame = func(now time.Time) {
		if h.Cancelled() {
			return
		}
		elapsed := now.Sub(origin)
		if elapsed < last {
			elapsed = last
		}
		last = elapsed

		onTick(elapsed)

		// onTick may have cancelled the handle; only re-arm a live clock.
		if h.Cancelled() {
			return
		}
		c.scheduler.RequestFrame(frame)
	}

	c.scheduler.RequestFrame(frame)
	return h
}

// Cancel stops h. A frame already queued for h becomes a no-op.
func (c *Clock) Cancel(h *Handle) {
	if h == nil {
		return
	}
	h.cancelled.Store(true)
}
