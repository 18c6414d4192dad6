package timer

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastSchedulerID int64

func nextSchedulerID() int {
	return int(atomic.AddInt64(&lastSchedulerID, 1))
}

// FiredMsg is delivered to the Bubbletea program when a Tea timer elapses.
// Route it back through Tea.Handle.
type FiredMsg struct {
	scheduler int
	id        uint64
}

// Tea is a Scheduler backed by tea.Tick. Arming a timer queues a command;
// the owning model must return Cmd() from its Update and pass every message
// to Handle, which runs the callback on the Update loop.
//
// A stopped timer's tick still arrives but is dropped by Handle.
type Tea struct {
	id      int
	seq     uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

// NewTea creates a scheduler with a unique identity, so several can share
// one program without consuming each other's ticks.
func NewTea() *Tea {
	return &Tea{
		id:      nextSchedulerID(),
		pending: make(map[uint64]func()),
	}
}

// ID returns the scheduler identity.
func (s *Tea) ID() int {
	return s.id
}

func (s *Tea) AfterFunc(d time.Duration, f func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	s.seq++
	id := s.seq
	s.pending[id] = f
	sid := s.id
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{scheduler: sid, id: id}
	}))
	return &teaHandle{s: s, id: id}
}

// Cmd drains the commands queued since the last call.
// Returns nil when nothing was armed.
func (s *Tea) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Handle runs the callback for msg if msg is a FiredMsg belonging to this
// scheduler and its timer is still armed. Reports whether msg belonged to s.
func (s *Tea) Handle(msg tea.Msg) bool {
	fired, ok := msg.(FiredMsg)
	if !ok || fired.scheduler != s.id {
		return false
	}
	fn, armed := s.pending[fired.id]
	if !armed {
		return true
	}
	delete(s.pending, fired.id)
	fn()
	return true
}

// Pending returns the number of armed timers.
func (s *Tea) Pending() int {
	return len(s.pending)
}

type teaHandle struct {
	s  *Tea
	id uint64
}

func (h *teaHandle) Stop() bool {
	if _, ok := h.s.pending[h.id]; !ok {
		return false
	}
	delete(h.s.pending, h.id)
	return true
}
