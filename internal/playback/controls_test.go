package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type changeLog struct {
	mu      sync.Mutex
	changes []bool
}

func (l *changeLog) record(visible bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.changes = append(l.changes, visible)
}

func (l *changeLog) snapshot() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]bool(nil), l.changes...)
}

func newTestControls() (*Controls, clockwork.FakeClock, *changeLog) {
	clock := clockwork.NewFakeClock()
	log := &changeLog{}
	c := NewControls(clock, OnVisibilityChange(log.record))
	return c, clock, log
}

func TestControls_StartHidden(t *testing.T) {
	c, _, _ := newTestControls()
	if c.Visible() {
		t.Error("expected controls hidden before any pointer event")
	}
}

func TestControls_EnterShowsSynchronously(t *testing.T) {
	c, _, log := newTestControls()
	c.PointerEnter()
	if !c.Visible() {
		t.Error("expected controls visible right after pointer enter")
	}
	if got := log.snapshot(); len(got) != 1 || !got[0] {
		t.Errorf("expected one change to visible, got %v", got)
	}
}

func TestControls_LeaveHidesAfterDelay(t *testing.T) {
	c, clock, _ := newTestControls()
	c.PointerEnter()
	c.PointerLeave()

	clock.Advance(HideDelay - time.Millisecond)
	if !c.Visible() {
		t.Fatal("expected controls visible before the delay elapses")
	}
	if !c.Pending() {
		t.Fatal("expected a pending hide")
	}

	clock.Advance(time.Millisecond)
	eventually(t, func() bool { return !c.Visible() }, "expected controls hidden after the delay")
	eventually(t, func() bool { return !c.Pending() }, "expected no pending hide after it fired")
}

func TestControls_ReenterCancelsHide(t *testing.T) {
	c, clock, log := newTestControls()

	c.PointerEnter()
	c.PointerLeave()
	clock.Advance(500 * time.Millisecond)
	c.PointerEnter()
	clock.Advance(5 * time.Second)

	if !c.Visible() {
		t.Error("expected controls to stay visible")
	}
	if c.Pending() {
		t.Error("expected hide cancelled")
	}
	if got := log.snapshot(); len(got) != 1 {
		t.Errorf("expected no flicker, got changes %v", got)
	}
}

func TestControls_RepeatedLeaveKeepsOneTimer(t *testing.T) {
	c, clock, log := newTestControls()
	c.PointerEnter()

	c.PointerLeave()
	clock.Advance(800 * time.Millisecond)
	c.PointerLeave()
	clock.Advance(800 * time.Millisecond)

	if !c.Visible() {
		t.Fatal("expected the first hide to have been replaced by the second")
	}

	clock.Advance(200 * time.Millisecond)
	eventually(t, func() bool { return !c.Visible() }, "expected hide 1000ms after the last leave")
	eventually(t, func() bool { return len(log.snapshot()) == 2 }, "expected exactly show then hide")
}

func TestControls_CloseCancelsPendingHide(t *testing.T) {
	c, clock, log := newTestControls()
	c.PointerEnter()
	c.PointerLeave()

	c.Close()
	clock.Advance(2 * HideDelay)

	if c.Pending() {
		t.Error("expected no pending hide after close")
	}
	if got := log.snapshot(); len(got) != 1 {
		t.Errorf("expected no state change after close, got %v", got)
	}
}

func TestControls_CloseIsIdempotent(t *testing.T) {
	c, _, _ := newTestControls()
	c.Close()
	c.Close()
	c.PointerEnter()
	c.PointerLeave()
	if c.Visible() || c.Pending() {
		t.Error("expected closed controls to ignore pointer events")
	}
}

func TestControls_CustomDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewControls(clock, WithHideDelay(3*time.Second))
	c.PointerEnter()
	c.PointerLeave()

	clock.Advance(2 * time.Second)
	if !c.Visible() {
		t.Fatal("expected controls visible inside a 3s delay")
	}
	clock.Advance(time.Second)
	eventually(t, func() bool { return !c.Visible() }, "expected controls hidden after 3s")
}

// Visibility is true iff the last event was an enter, or a leave less than
// the delay ago that followed an enter. A leave from hidden stays hidden.
func TestControls_VisibilityFollowsLastEvent(t *testing.T) {
	type step struct {
		enter bool
		after time.Duration
	}
	tests := []struct {
		name  string
		steps []step
		want  bool
	}{
		{"enter", []step{{true, 0}}, true},
		{"enter long ago", []step{{true, time.Hour}}, true},
		{"leave just now", []step{{true, 0}, {false, 0}}, true},
		{"leave 999ms ago", []step{{true, 0}, {false, 999 * time.Millisecond}}, true},
		{"leave 1000ms ago", []step{{true, 0}, {false, HideDelay}}, false},
		{"flutter ends on enter", []step{{true, 0}, {false, 100 * time.Millisecond}, {true, 100 * time.Millisecond}, {false, 100 * time.Millisecond}, {true, 2 * time.Second}}, true},
		{"flutter ends on leave", []step{{false, 0}, {true, 300 * time.Millisecond}, {false, 1500 * time.Millisecond}}, false},
		{"leave without enter", []step{{false, 10 * time.Millisecond}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock, _ := newTestControls()
			for _, s := range tt.steps {
				if s.enter {
					c.PointerEnter()
				} else {
					c.PointerLeave()
				}
				clock.Advance(s.after)
			}
			if tt.want {
				if !c.Visible() {
					t.Error("expected controls visible")
				}
				return
			}
			eventually(t, func() bool { return !c.Visible() }, "expected controls hidden")
		})
	}
}
