package navtree

import (
	"github.com/raphi011/tuikit/internal/ui/overlay"
)

// ActivationKind says what an activation did.
type ActivationKind int

const (
	// Ignored means nothing happened (unknown or disabled item).
	Ignored ActivationKind = iota
	// Toggled means a parent was expanded or collapsed.
	Toggled
	// Selected means a leaf was chosen.
	Selected
)

func (k ActivationKind) String() string {
	switch k {
	case Toggled:
		return "toggled"
	case Selected:
		return "selected"
	default:
		return "ignored"
	}
}

// Activation reports the outcome of [State.Activate].
type Activation struct {
	Kind ActivationKind
	ID   string

	// Expanded is the new expansion state after a toggle.
	Expanded bool

	// Closed is true when selecting a leaf closed the menu.
	Closed bool

	// Href is the selected leaf's link, for the host to navigate to.
	Href string
}

// Options configures a State.
type Options struct {
	// Owner names the overlay lease. Defaults to "navtree".
	Owner string

	// Stack, when set, receives a lease while the menu is open.
	Stack *overlay.Stack

	// OnClose is called on every open to closed transition.
	OnClose func()

	// ResetOnOpen collapses everything each time the menu opens.
	// By default expansion survives close and reopen.
	ResetOnOpen bool
}

// State is the navigation state of one menu instance.
type State struct {
	tree     *Tree
	expanded map[string]struct{}
	open     bool
	lease    *overlay.Lease
	opts     Options
}

// New creates a closed menu over tree with nothing expanded.
func New(tree *Tree, opts Options) *State {
	if opts.Owner == "" {
		opts.Owner = "navtree"
	}
	return &State{
		tree:     tree,
		expanded: make(map[string]struct{}),
		opts:     opts,
	}
}

// Tree returns the underlying tree.
func (s *State) Tree() *Tree { return s.tree }

// IsExpanded reports whether id is expanded.
func (s *State) IsExpanded(id string) bool {
	_, ok := s.expanded[id]
	return ok
}

// Expanded returns the number of expanded nodes.
func (s *State) Expanded() int { return len(s.expanded) }

// Toggle flips id's expansion. IDs that are unknown or have no children
// are left alone and Toggle returns false.
func (s *State) Toggle(id string) bool {
	if !s.tree.HasChildren(id) {
		return false
	}
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
	} else {
		s.expanded[id] = struct{}{}
	}
	return true
}

// Activate handles a click or enter on id. Disabled items do nothing.
// Parents toggle. Leaves run OnSelect, and a leaf without an Href also
// closes the menu.
func (s *State) Activate(id string) Activation {
	n, ok := s.tree.lookup(id)
	if !ok || n.disabled {
		return Activation{Kind: Ignored, ID: id}
	}

	if len(n.children) > 0 {
		s.Toggle(id)
		return Activation{Kind: Toggled, ID: id, Expanded: s.IsExpanded(id)}
	}

	if n.onSelect != nil {
		n.onSelect()
	}
	a := Activation{Kind: Selected, ID: id, Href: n.href}
	if n.href == "" {
		a.Closed = s.RequestClose()
	}
	return a
}

// Visible reports whether every ancestor of id is expanded. Roots are
// always visible; unknown IDs never are.
func (s *State) Visible(id string) bool {
	if !s.tree.Has(id) {
		return false
	}
	for _, a := range s.tree.Ancestors(id) {
		if !s.IsExpanded(a) {
			return false
		}
	}
	return true
}

// Reveal expands every ancestor of id so it becomes visible.
func (s *State) Reveal(id string) bool {
	if !s.tree.Has(id) {
		return false
	}
	for _, a := range s.tree.Ancestors(id) {
		s.expanded[a] = struct{}{}
	}
	return true
}

// CollapseAll clears the expansion set.
func (s *State) CollapseAll() {
	clear(s.expanded)
}

// Row is one visible line of the menu.
type Row struct {
	ID          string
	Label       string
	Href        string
	Icon        string
	Depth       int
	HasChildren bool
	Expanded    bool
	Disabled    bool
}

// Rows returns the visible rows in pre-order. Children are listed only
// under expanded parents.
func (s *State) Rows() []Row {
	var rows []Row
	var walk func(idx int)
	walk = func(idx int) {
		n := &s.tree.nodes[idx]
		expanded := s.IsExpanded(n.id)
		rows = append(rows, Row{
			ID:          n.id,
			Label:       n.label,
			Href:        n.href,
			Icon:        n.icon,
			Depth:       n.depth,
			HasChildren: len(n.children) > 0,
			Expanded:    expanded,
			Disabled:    n.disabled,
		})
		if !expanded {
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, r := range s.tree.roots {
		walk(r)
	}
	return rows
}

// IsOpen reports whether the menu is shown.
func (s *State) IsOpen() bool { return s.open }

// Open shows the menu and takes the overlay lease. Opening an open menu
// does nothing.
func (s *State) Open() bool {
	if s.open {
		return false
	}
	s.open = true
	if s.opts.ResetOnOpen {
		s.CollapseAll()
	}
	if s.opts.Stack != nil {
		s.lease = s.opts.Stack.Acquire(s.opts.Owner)
	}
	return true
}

// Close hides the menu, releases the lease and notifies OnClose.
// Closing a closed menu does nothing.
func (s *State) Close() bool {
	if !s.open {
		return false
	}
	s.open = false
	s.lease.Release()
	s.lease = nil
	if s.opts.OnClose != nil {
		s.opts.OnClose()
	}
	return true
}

// RequestClose is the menu asking to be closed, e.g. from its close button.
func (s *State) RequestClose() bool { return s.Close() }

// Cancel handles an external cancel signal such as esc at the host level.
func (s *State) Cancel() bool { return s.Close() }

// Destroy releases the lease without notifying OnClose. The State should
// not be used afterwards.
func (s *State) Destroy() {
	s.lease.Release()
	s.lease = nil
	s.open = false
}

// Lease returns the held overlay lease, or nil when closed.
func (s *State) Lease() *overlay.Lease { return s.lease }
