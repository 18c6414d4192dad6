// Package navtree implements a hierarchical navigation menu.
//
// [Tree] is an immutable index over the host's [Item] hierarchy. [State]
// holds the per-menu expansion set and open/closed visibility on top of a
// Tree, decides what an activation does, and owns the overlay lease while
// the menu is open. [Panel] is the Bubbletea component that renders a State
// as a side panel with cursor navigation and fuzzy search.
package navtree

// Item is one entry of the host-supplied menu.
type Item struct {
	ID       string
	Label    string
	Href     string
	Icon     string
	Disabled bool
	OnSelect func()
	Children []Item
}

type node struct {
	index    int
	parent   int // -1 for roots
	depth    int
	children []int

	id       string
	label    string
	href     string
	icon     string
	disabled bool
	onSelect func()
}

// Tree is a flattened, read-only view of an item hierarchy. Nodes are stored
// in pre-order. When IDs repeat, lookups resolve to the first occurrence.
type Tree struct {
	nodes []node
	roots []int
	byID  map[string]int
}

// NewTree indexes items. The input slice is not retained.
func NewTree(items []Item) *Tree {
	t := &Tree{byID: make(map[string]int)}
	for _, it := range items {
		t.roots = append(t.roots, t.add(it, -1, 0))
	}
	return t
}

func (t *Tree) add(it Item, parent, depth int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		index:    idx,
		parent:   parent,
		depth:    depth,
		id:       it.ID,
		label:    it.Label,
		href:     it.Href,
		icon:     it.Icon,
		disabled: it.Disabled,
		onSelect: it.OnSelect,
	})
	if _, dup := t.byID[it.ID]; !dup {
		t.byID[it.ID] = idx
	}
	for _, child := range it.Children {
		c := t.add(child, idx, depth+1)
		t.nodes[idx].children = append(t.nodes[idx].children, c)
	}
	return idx
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Has reports whether id names a node.
func (t *Tree) Has(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// HasChildren reports whether id names a node with at least one child.
func (t *Tree) HasChildren(id string) bool {
	n, ok := t.lookup(id)
	return ok && len(n.children) > 0
}

// Parent returns the ID of id's parent. ok is false for roots and unknown
// IDs.
func (t *Tree) Parent(id string) (parent string, ok bool) {
	n, found := t.lookup(id)
	if !found || n.parent < 0 {
		return "", false
	}
	return t.nodes[n.parent].id, true
}

// Children returns the IDs of id's direct children.
func (t *Tree) Children(id string) []string {
	n, ok := t.lookup(id)
	if !ok {
		return nil
	}
	ids := make([]string, len(n.children))
	for i, c := range n.children {
		ids[i] = t.nodes[c].id
	}
	return ids
}

// Ancestors returns the IDs from the root down to id's parent.
func (t *Tree) Ancestors(id string) []string {
	n, ok := t.lookup(id)
	if !ok {
		return nil
	}
	var ids []string
	for p := n.parent; p >= 0; p = t.nodes[p].parent {
		ids = append(ids, t.nodes[p].id)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

// Path returns the labels from the root down to id, inclusive.
func (t *Tree) Path(id string) []string {
	n, ok := t.lookup(id)
	if !ok {
		return nil
	}
	return t.pathOf(n.index)
}

func (t *Tree) pathOf(idx int) []string {
	var labels []string
	for i := idx; i >= 0; i = t.nodes[i].parent {
		labels = append([]string{t.nodes[i].label}, labels...)
	}
	return labels
}

func (t *Tree) lookup(id string) (*node, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return &t.nodes[idx], true
}
