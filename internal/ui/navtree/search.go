package navtree

import (
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Match is a search hit.
type Match struct {
	ID       string
	Label    string
	Path     []string // labels from the root down to the hit
	Indexes  []int    // rune positions of matched characters in Label
	Score    int
	Disabled bool
}

// labelSource implements fuzzy.Source over node labels.
type labelSource []node

func (s labelSource) String(i int) string { return s[i].label }
func (s labelSource) Len() int            { return len(s) }

// Search fuzzy-matches query against every label in the tree, collapsed or
// not, best match first. An empty query matches nothing. Only the first
// node of a duplicated ID is reported.
func (t *Tree) Search(query string) []Match {
	if query == "" {
		return nil
	}
	found := fuzzy.FindFrom(query, labelSource(t.nodes))
	matches := make([]Match, 0, len(found))
	for _, f := range found {
		n := &t.nodes[f.Index]
		if t.byID[n.id] != n.index {
			continue
		}
		matches = append(matches, Match{
			ID:       n.id,
			Label:    n.label,
			Path:     t.pathOf(n.index),
			Indexes:  runeIndexes(n.label, f.MatchedIndexes),
			Score:    f.Score,
			Disabled: n.disabled,
		})
	}
	return matches
}

// runeIndexes converts the byte offsets reported by fuzzy into rune
// positions within label.
func runeIndexes(label string, offsets []int) []int {
	out := make([]int, len(offsets))
	for i, off := range offsets {
		out[i] = utf8.RuneCountInString(label[:off])
	}
	return out
}

// Search runs [Tree.Search] on the state's tree.
func (s *State) Search(query string) []Match {
	return s.tree.Search(query)
}
