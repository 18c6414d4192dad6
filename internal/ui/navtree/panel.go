package navtree

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

// Side is where the panel is placed.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// KeyMap holds the panel bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Search   key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Activate: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "select")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "expand")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "collapse")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ActivatedMsg is emitted when a leaf is selected.
type ActivatedMsg struct {
	Activation Activation
}

// Panel renders a State as a side menu.
type Panel struct {
	state *State
	keys  KeyMap

	title string
	width int
	side  Side

	cursor    int
	searching bool
	query     textinput.Model
	matches   []Match

	logger *log.Logger
}

// NewPanel creates a panel over state.
func NewPanel(state *State) *Panel {
	q := textinput.New()
	q.Prompt = "/ "
	q.Placeholder = "search"
	return &Panel{
		state: state,
		keys:  DefaultKeyMap(),
		title: "Menu",
		width: 32,
		side:  SideRight,
		query: q,
	}
}

// WithTitle sets the header title.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// WithWidth sets the panel width in cells, border included.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// WithSide sets where Place puts the panel.
func (p *Panel) WithSide(side Side) *Panel {
	p.side = side
	return p
}

// WithKeyMap replaces the bindings.
func (p *Panel) WithKeyMap(keys KeyMap) *Panel {
	p.keys = keys
	return p
}

// WithLogger traces activations to l.
func (p *Panel) WithLogger(l *log.Logger) *Panel {
	p.logger = l
	return p
}

// State returns the engine.
func (p *Panel) State() *State { return p.state }

// Side returns where Place puts the panel.
func (p *Panel) Side() Side { return p.side }

// Cursor returns the index of the highlighted row or match.
func (p *Panel) Cursor() int { return p.cursor }

// Searching reports whether search mode is active.
func (p *Panel) Searching() bool { return p.searching }

// Open opens the menu with the cursor on the first row.
func (p *Panel) Open() {
	if p.state.Open() {
		p.cursor = 0
		p.logger.Debug("menu open", "owner", p.state.opts.Owner)
	}
}

// Cancel leaves search mode if active, otherwise closes the menu.
// Hosts map their cancel key here while the panel holds the overlay.
func (p *Panel) Cancel() bool {
	if p.searching {
		p.stopSearch()
		return true
	}
	if p.state.Cancel() {
		p.logger.Debug("menu cancel", "owner", p.state.opts.Owner)
		return true
	}
	return false
}

// Update handles a message. A closed panel ignores everything.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	if !p.state.IsOpen() {
		return p, nil
	}
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if p.searching {
			var cmd tea.Cmd
			p.query, cmd = p.query.Update(msg)
			return p, cmd
		}
		return p, nil
	}
	if p.searching {
		return p.updateSearch(keyMsg)
	}

	rows := p.state.Rows()
	p.clampCursor()
	switch {
	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(rows)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, p.keys.Activate):
		if p.cursor < len(rows) {
			return p, p.activate(rows[p.cursor].ID)
		}
	case key.Matches(keyMsg, p.keys.Expand):
		if p.cursor < len(rows) && rows[p.cursor].HasChildren && !rows[p.cursor].Expanded {
			return p, p.activate(rows[p.cursor].ID)
		}
	case key.Matches(keyMsg, p.keys.Collapse):
		if p.cursor >= len(rows) {
			break
		}
		row := rows[p.cursor]
		if row.Expanded {
			return p, p.activate(row.ID)
		}
		if parent, ok := p.state.tree.Parent(row.ID); ok {
			p.moveTo(parent)
		}
	case key.Matches(keyMsg, p.keys.Search):
		p.searching = true
		p.query.SetValue("")
		p.matches = nil
		p.cursor = 0
		return p, p.query.Focus()
	case key.Matches(keyMsg, p.keys.Cancel):
		p.Cancel()
	}
	return p, nil
}

func (p *Panel) updateSearch(msg tea.KeyPressMsg) (*Panel, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Cancel):
		p.stopSearch()
		return p, nil
	case msg.String() == "up":
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil
	case msg.String() == "down":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return p, nil
	case msg.String() == "enter":
		if p.cursor >= len(p.matches) {
			return p, nil
		}
		id := p.matches[p.cursor].ID
		p.stopSearch()
		p.state.Reveal(id)
		p.moveTo(id)
		return p, p.activate(id)
	}

	before := p.query.Value()
	var cmd tea.Cmd
	p.query, cmd = p.query.Update(msg)
	if q := p.query.Value(); q != before {
		p.matches = p.state.Search(q)
		p.cursor = 0
	}
	return p, cmd
}

func (p *Panel) stopSearch() {
	p.searching = false
	p.query.Blur()
	p.query.SetValue("")
	p.matches = nil
	p.cursor = 0
}

func (p *Panel) activate(id string) tea.Cmd {
	a := p.state.Activate(id)
	p.logger.Debug("menu activate", "id", id, "kind", a.Kind, "closed", a.Closed)
	p.clampCursor()
	if a.Kind != Selected {
		return nil
	}
	return func() tea.Msg { return ActivatedMsg{Activation: a} }
}

func (p *Panel) moveTo(id string) {
	for i, r := range p.state.Rows() {
		if r.ID == id {
			p.cursor = i
			return
		}
	}
}

func (p *Panel) clampCursor() {
	if n := len(p.state.Rows()); p.cursor >= n {
		p.cursor = max(n-1, 0)
	}
}

// View renders the panel, or "" when closed.
func (p *Panel) View() string {
	if !p.state.IsOpen() {
		return ""
	}
	inner := p.width - 3 // left border and padding
	sym := styles.CurrentSymbols()

	var b strings.Builder
	title := styles.TitleStyle().Render(styles.Truncate(p.title, inner-2))
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(sym.Close), 1)
	b.WriteString(title + strings.Repeat(" ", gap) + styles.MutedStyle().Render(sym.Close) + "\n\n")

	if p.searching {
		p.query.SetWidth(inner - 2)
		b.WriteString(p.query.View() + "\n")
		p.renderMatches(&b, inner)
	} else {
		p.renderRows(&b, inner, sym)
	}

	return styles.PanelStyle(p.width).Render(strings.TrimRight(b.String(), "\n"))
}

func (p *Panel) renderRows(b *strings.Builder, inner int, sym styles.Symbols) {
	for i, row := range p.state.Rows() {
		indent := strings.Repeat(" ", row.Depth*2)
		chevron := " "
		if row.HasChildren {
			chevron = sym.Collapsed
			if row.Expanded {
				chevron = sym.Expanded
			}
		}
		label := row.Label
		if row.Icon != "" {
			label = row.Icon + " " + label
		}
		label = styles.Truncate(label, inner-len(indent)-2)

		style := styles.RowStyle()
		switch {
		case row.Disabled:
			style = styles.RowDisabledStyle()
		case i == p.cursor:
			style = styles.RowActiveStyle()
		}
		text := style.Render(label)
		if !row.Disabled {
			text = styles.Hyperlink(row.Href, text)
		}
		b.WriteString(indent + styles.MutedStyle().Render(chevron) + " " + text + "\n")
	}
}

func (p *Panel) renderMatches(b *strings.Builder, inner int) {
	if p.query.Value() != "" && len(p.matches) == 0 {
		b.WriteString(styles.MutedStyle().Render("No matching items") + "\n")
		return
	}
	for i, m := range p.matches {
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}
		var label string
		switch {
		case m.Disabled:
			label = styles.RowDisabledStyle().Render(m.Label)
		default:
			label = highlightMatches(m.Label, m.Indexes, i == p.cursor)
		}
		b.WriteString(cursor + label + "\n")
		if len(m.Path) > 1 {
			parents := strings.Join(m.Path[:len(m.Path)-1], " › ")
			b.WriteString("    " + styles.MutedStyle().Render(styles.Truncate(parents, inner-4)) + "\n")
		}
	}
}

// highlightMatches renders label with matched characters highlighted.
func highlightMatches(label string, indexes []int, selected bool) string {
	matchSet := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matchSet[idx] = true
	}
	style := styles.RowStyle()
	if selected {
		style = styles.RowActiveStyle()
	}
	var result strings.Builder
	for i, r := range []rune(label) {
		if matchSet[i] {
			result.WriteString(styles.HighlightStyle().Render(string(r)))
		} else {
			result.WriteString(style.Render(string(r)))
		}
	}
	return result.String()
}

// Place positions the panel on its side of a width×height area.
func (p *Panel) Place(width, height int) string {
	pos := lipgloss.Right
	if p.side == SideLeft {
		pos = lipgloss.Left
	}
	return lipgloss.Place(width, height, pos, lipgloss.Top, p.View())
}

// ShortHelp returns the bindings for bubbles/help.
func (p *Panel) ShortHelp() []key.Binding {
	return []key.Binding{p.keys.Up, p.keys.Down, p.keys.Activate, p.keys.Search, p.keys.Cancel}
}

// FullHelp returns all bindings.
func (p *Panel) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{p.keys.Up, p.keys.Down, p.keys.Expand, p.keys.Collapse},
		{p.keys.Activate, p.keys.Search, p.keys.Cancel},
	}
}
