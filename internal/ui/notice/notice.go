// Package notice implements self-dismissing notifications.
//
// A [Notice] moves through three phases:
//
//	Visible ──(duration elapses or Dismiss)──▶ Exiting ──(ExitDelay)──▶ Gone
//
// OnDismiss fires exactly once, on reaching Gone. Timers go through a
// [timer.Scheduler], so tests drive them with a virtual clock and the
// Bubbletea [Model] drives them with ticks. [Tray] keeps several notices
// keyed by ID.
package notice

import (
	"time"

	"github.com/raphi011/tuikit/internal/ui/timer"
)

// ExitDelay is how long a notice stays in the exiting phase.
const ExitDelay = 300 * time.Millisecond

// DefaultDuration is the auto-dismiss delay used by the CLI and config.
const DefaultDuration = 5 * time.Second

// Phase is the lifecycle position of a notice.
type Phase int

const (
	PhaseVisible Phase = iota
	PhaseExiting
	PhaseGone
)

func (p Phase) String() string {
	switch p {
	case PhaseExiting:
		return "exiting"
	case PhaseGone:
		return "gone"
	default:
		return "visible"
	}
}

// Options configures a Notice.
type Options struct {
	ID string

	// Duration before auto-dismiss. Zero or negative disables it.
	Duration time.Duration

	// OnDismiss is called once when the notice is gone.
	OnDismiss func()

	// OnPhase, if set, observes every phase change made by the lifecycle.
	// Destroy moves straight to Gone without reporting it.
	OnPhase func(from, to Phase)
}

// Notice is the lifecycle engine of one notification.
type Notice struct {
	sched    timer.Scheduler
	id       string
	duration time.Duration
	phase    Phase

	auto timer.Handle
	exit timer.Handle

	onDismiss func()
	onPhase   func(from, to Phase)
}

// New creates a visible notice and arms its auto-dismiss timer.
func New(sched timer.Scheduler, opts Options) *Notice {
	n := &Notice{
		sched:     sched,
		id:        opts.ID,
		duration:  opts.Duration,
		onDismiss: opts.OnDismiss,
		onPhase:   opts.OnPhase,
	}
	n.armAuto()
	return n
}

// ID returns the notice identity.
func (n *Notice) ID() string { return n.id }

// Duration returns the current auto-dismiss delay.
func (n *Notice) Duration() time.Duration { return n.duration }

// Phase returns the current phase.
func (n *Notice) Phase() Phase { return n.phase }

func (n *Notice) armAuto() {
	n.auto = timer.Stop(n.auto)
	if n.duration > 0 {
		n.auto = n.sched.AfterFunc(n.duration, func() {
			n.auto = nil
			n.Dismiss()
		})
	}
}

// Dismiss starts the exit. It only acts while Visible and reports whether
// it did.
func (n *Notice) Dismiss() bool {
	if n.phase != PhaseVisible {
		return false
	}
	n.auto = timer.Stop(n.auto)
	n.setPhase(PhaseExiting)
	n.exit = n.sched.AfterFunc(ExitDelay, n.finish)
	return true
}

func (n *Notice) finish() {
	n.exit = nil
	if n.phase != PhaseExiting {
		return
	}
	n.setPhase(PhaseGone)
	if n.onDismiss != nil {
		n.onDismiss()
	}
	n.release()
}

// Update applies new props. While Visible, a changed id or duration restarts
// the auto-dismiss timer from zero. It is ignored once exiting.
func (n *Notice) Update(id string, duration time.Duration) bool {
	if n.phase != PhaseVisible {
		return false
	}
	if id == n.id && duration == n.duration {
		return false
	}
	n.id = id
	n.duration = duration
	n.armAuto()
	return true
}

// Destroy tears the notice down. Pending timers are cancelled, the phase
// becomes Gone and neither OnDismiss nor OnPhase is called.
func (n *Notice) Destroy() {
	n.release()
	n.phase = PhaseGone
}

func (n *Notice) release() {
	n.auto = timer.Stop(n.auto)
	n.exit = timer.Stop(n.exit)
}

func (n *Notice) setPhase(p Phase) {
	from := n.phase
	n.phase = p
	if n.onPhase != nil {
		n.onPhase(from, p)
	}
}
