package playback

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Controls tracks whether the overlay (play/pause icon) is shown. Leaving
// the player schedules a hide; entering again cancels it. At most one hide
// is pending at a time.
type Controls struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	delay    time.Duration
	onChange func(visible bool)

	visible bool
	timer   clockwork.Timer
	gen     uint64
	closed  bool
}

type ControlsOption func(*Controls)

func WithHideDelay(d time.Duration) ControlsOption {
	return func(c *Controls) { c.delay = d }
}

// OnVisibilityChange registers a callback run after every change. It is
// called without the lock held, possibly from the timer goroutine.
func OnVisibilityChange(fn func(visible bool)) ControlsOption {
	return func(c *Controls) { c.onChange = fn }
}

func NewControls(clock clockwork.Clock, opts ...ControlsOption) *Controls {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := &Controls{clock: clock, delay: HideDelay}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controls) PointerEnter() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancel()
	changed := c.set(true)
	c.mu.Unlock()
	c.notify(changed, true)
}

func (c *Controls) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.cancel()
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.delay, func() { c.hide(gen) })
}

// Close cancels any pending hide. Nothing changes state afterwards.
func (c *Controls) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	c.closed = true
}

func (c *Controls) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Pending reports whether a hide is scheduled.
func (c *Controls) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

func (c *Controls) hide(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	changed := c.set(false)
	c.mu.Unlock()
	c.notify(changed, false)
}

// cancel stops the pending timer. Bumping gen also voids a callback that
// has already fired and is waiting on the lock.
func (c *Controls) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controls) set(visible bool) bool {
	if c.visible == visible {
		return false
	}
	c.visible = visible
	return true
}

func (c *Controls) notify(changed, visible bool) {
	if changed && c.onChange != nil {
		c.onChange(visible)
	}
}
