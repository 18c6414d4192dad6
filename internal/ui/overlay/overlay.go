// Package overlay tracks which component holds exclusive overlay focus.
//
// An overlay (such as the navigation panel) acquires a [Lease] when it
// opens. While any lease is held, the host routes keys to the owner on top
// and suspends background scrolling. Releasing is idempotent, so owners can
// release on every exit path (close, cancel, teardown) without bookkeeping.
package overlay

// Stack hands out leases in LIFO order.
type Stack struct {
	seq    uint64
	leases []*Lease
}

// Lease is a held claim on overlay focus.
type Lease struct {
	stack    *Stack
	id       uint64
	owner    string
	released bool
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Acquire pushes a new lease for owner.
func (s *Stack) Acquire(owner string) *Lease {
	s.seq++
	l := &Lease{stack: s, id: s.seq, owner: owner}
	s.leases = append(s.leases, l)
	return l
}

// Active reports whether any lease is held.
func (s *Stack) Active() bool {
	return len(s.leases) > 0
}

// Len returns the number of held leases.
func (s *Stack) Len() int {
	return len(s.leases)
}

// Top returns the owner of the most recent lease, or "" if none is held.
func (s *Stack) Top() string {
	if len(s.leases) == 0 {
		return ""
	}
	return s.leases[len(s.leases)-1].owner
}

// Owner returns the lease owner.
func (l *Lease) Owner() string {
	return l.owner
}

// Released reports whether the lease was released.
func (l *Lease) Released() bool {
	return l.released
}

// Release gives the lease back. Calling it again, or on a nil lease, does
// nothing. Reports whether this call released it.
func (l *Lease) Release() bool {
	if l == nil || l.released {
		return false
	}
	l.released = true
	s := l.stack
	for i, held := range s.leases {
		if held.id == l.id {
			s.leases = append(s.leases[:i], s.leases[i+1:]...)
			break
		}
	}
	return true
}
