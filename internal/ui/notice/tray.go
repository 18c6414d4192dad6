package notice

import (
	"fmt"
	"time"

	"github.com/raphi011/tuikit/internal/ui/timer"
)

// Toast is what a host pushes into a Tray.
type Toast struct {
	ID       string
	Message  string
	Variant  Variant
	Duration time.Duration
}

// Entry is a notice held by a Tray.
type Entry struct {
	Message string
	Variant Variant
	Notice  *Notice
}

// Tray keeps live notices in push order and drops them once gone.
type Tray struct {
	sched   timer.Scheduler
	entries []*Entry
	seq     int

	// OnRemoved is called after a notice reached Gone and left the tray,
	// and when an exiting notice is replaced by a Push with its ID.
	// Destroy does not call it.
	OnRemoved func(id string)
	// OnPhase observes phase changes of every notice.
	OnPhase func(id string, from, to Phase)
}

// NewTray creates an empty tray scheduling on sched.
func NewTray(sched timer.Scheduler) *Tray {
	return &Tray{sched: sched}
}

// Push shows t. If a visible notice with the same ID exists it is updated
// in place, restarting its timer when the duration changed. A same-ID
// notice that is already exiting is replaced. An empty ID gets a generated
// one. Returns the ID used.
func (tr *Tray) Push(t Toast) string {
	if t.ID == "" {
		tr.seq++
		t.ID = fmt.Sprintf("notice-%d", tr.seq)
	}

	if e := tr.find(t.ID); e != nil {
		if e.Notice.Phase() == PhaseVisible {
			e.Message = t.Message
			e.Variant = t.Variant
			e.Notice.Update(t.ID, t.Duration)
			return t.ID
		}
		tr.remove(e)
		e.Notice.Destroy()
		if tr.OnRemoved != nil {
			tr.OnRemoved(t.ID)
		}
	}

	e := &Entry{Message: t.Message, Variant: t.Variant}
	id := t.ID
	e.Notice = New(tr.sched, Options{
		ID:       id,
		Duration: t.Duration,
		OnDismiss: func() {
			tr.remove(e)
			if tr.OnRemoved != nil {
				tr.OnRemoved(id)
			}
		},
		OnPhase: func(from, to Phase) {
			if tr.OnPhase != nil {
				tr.OnPhase(id, from, to)
			}
		},
	})
	tr.entries = append(tr.entries, e)
	return id
}

// Dismiss starts the exit of the notice with id.
func (tr *Tray) Dismiss(id string) bool {
	e := tr.find(id)
	if e == nil {
		return false
	}
	return e.Notice.Dismiss()
}

// DismissLatest dismisses the most recently pushed visible notice.
func (tr *Tray) DismissLatest() bool {
	for i := len(tr.entries) - 1; i >= 0; i-- {
		if tr.entries[i].Notice.Dismiss() {
			return true
		}
	}
	return false
}

// DismissAll starts the exit of every visible notice.
func (tr *Tray) DismissAll() int {
	n := 0
	for _, e := range tr.Entries() {
		if e.Notice.Dismiss() {
			n++
		}
	}
	return n
}

// Destroy tears down every notice without dismiss callbacks.
func (tr *Tray) Destroy() {
	for _, e := range tr.entries {
		e.Notice.Destroy()
	}
	tr.entries = nil
}

// Entries returns a copy of the live entries, oldest first.
func (tr *Tray) Entries() []*Entry {
	return append([]*Entry(nil), tr.entries...)
}

// Len returns the number of live notices.
func (tr *Tray) Len() int { return len(tr.entries) }

// Get returns the entry with id, or nil.
func (tr *Tray) Get(id string) *Entry { return tr.find(id) }

func (tr *Tray) find(id string) *Entry {
	for _, e := range tr.entries {
		if e.Notice.ID() == id {
			return e
		}
	}
	return nil
}

func (tr *Tray) remove(target *Entry) {
	for i, e := range tr.entries {
		if e == target {
			tr.entries = append(tr.entries[:i], tr.entries[i+1:]...)
			return
		}
	}
}
