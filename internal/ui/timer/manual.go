package timer

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock.
// Time only moves when Advance is called.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m        *Manual
	seq      uint64
	deadline time.Duration
	fn       func()
	done     bool
}

// NewManual creates a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	return len(m.pending)
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Handle {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, seq: m.seq, deadline: m.now + d, fn: f}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls inside the window in deadline order (ties by creation order).
// The clock reads the timer's deadline while its callback runs, and timers
// armed by a callback fire in the same call if they come due.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.next()
		if t == nil || t.deadline > target {
			break
		}
		m.remove(t)
		t.done = true
		m.now = t.deadline
		t.fn()
	}
	m.now = target
}

// AdvanceTo moves the clock to the absolute virtual time at.
// Times in the past are ignored.
func (m *Manual) AdvanceTo(at time.Duration) {
	if at > m.now {
		m.Advance(at - m.now)
	}
}

func (m *Manual) next() *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].deadline != m.pending[j].deadline {
			return m.pending[i].deadline < m.pending[j].deadline
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}
