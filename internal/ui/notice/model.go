package notice

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/styles"
	"github.com/raphi011/tuikit/internal/ui/timer"
)

// Variant selects the notice icon and color.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ValidVariants lists the accepted variants.
var ValidVariants = []Variant{VariantSuccess, VariantError, VariantWarning, VariantInfo}

// ParseVariant converts s to a Variant. Empty means info.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantInfo, nil
	}
	for _, v := range ValidVariants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid variant %q (valid: success, error, warning, info)", s)
}

// Color returns the palette color for v.
func (v Variant) Color() color.Color {
	switch v {
	case VariantSuccess:
		return styles.Success
	case VariantError:
		return styles.Error
	case VariantWarning:
		return styles.Warning
	default:
		return styles.Info
	}
}

// Icon returns the symbol for v.
func (v Variant) Icon() string {
	sym := styles.CurrentSymbols()
	switch v {
	case VariantSuccess:
		return sym.Success
	case VariantError:
		return sym.Error
	case VariantWarning:
		return sym.Warning
	default:
		return sym.Info
	}
}

// Position is where notices are stacked on screen.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

func (p Position) align() (h, v lipgloss.Position) {
	v = lipgloss.Bottom
	if strings.HasPrefix(string(p), "top") {
		v = lipgloss.Top
	}
	switch {
	case strings.HasSuffix(string(p), "left"):
		h = lipgloss.Left
	case strings.HasSuffix(string(p), "center"):
		h = lipgloss.Center
	default:
		h = lipgloss.Right
	}
	return h, v
}

// KeyMap holds the notice bindings.
type KeyMap struct {
	Close key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss")),
	}
}

// Model renders a Tray as a stack of toasts driven by Bubbletea ticks.
type Model struct {
	sched *timer.Tea
	tray  *Tray
	keys  KeyMap

	position  Position
	showClose bool
	width     int

	logger *log.Logger
}

// NewModel creates an empty notice stack.
func NewModel() *Model {
	sched := timer.NewTea()
	m := &Model{
		sched:     sched,
		tray:      NewTray(sched),
		keys:      DefaultKeyMap(),
		position:  BottomRight,
		showClose: true,
		width:     40,
	}
	m.tray.OnPhase = func(id string, from, to Phase) {
		m.logger.Debug("notice phase", "id", id, "from", from, "to", to)
	}
	return m
}

// WithPosition sets where Place puts the stack.
func (m *Model) WithPosition(p Position) *Model {
	m.position = p
	return m
}

// WithClose shows or hides the close affordance.
func (m *Model) WithClose(show bool) *Model {
	m.showClose = show
	return m
}

// WithWidth sets the toast width.
func (m *Model) WithWidth(width int) *Model {
	m.width = width
	return m
}

// WithKeyMap replaces the bindings.
func (m *Model) WithKeyMap(keys KeyMap) *Model {
	m.keys = keys
	return m
}

// WithLogger traces phase changes to l.
func (m *Model) WithLogger(l *log.Logger) *Model {
	m.logger = l
	return m
}

// Tray returns the underlying tray.
func (m *Model) Tray() *Tray { return m.tray }

// Push shows a toast and returns the command that arms its timer.
func (m *Model) Push(t Toast) tea.Cmd {
	m.tray.Push(t)
	return m.sched.Cmd()
}

// Dismiss starts the exit of the toast with id.
func (m *Model) Dismiss(id string) tea.Cmd {
	m.tray.Dismiss(id)
	return m.sched.Cmd()
}

// DismissLatest starts the exit of the newest visible toast.
func (m *Model) DismissLatest() tea.Cmd {
	m.tray.DismissLatest()
	return m.sched.Cmd()
}

// Empty reports whether no toast is shown.
func (m *Model) Empty() bool { return m.tray.Len() == 0 }

// Destroy cancels every pending timer.
func (m *Model) Destroy() { m.tray.Destroy() }

// Update routes timer ticks and the close key.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.sched.Handle(msg) {
		return m, m.sched.Cmd()
	}
	if k, ok := msg.(tea.KeyPressMsg); ok && m.showClose && key.Matches(k, m.keys.Close) {
		return m, m.DismissLatest()
	}
	return m, nil
}

// View renders the toasts stacked top to bottom, oldest first.
func (m *Model) View() string {
	entries := m.tray.Entries()
	if len(entries) == 0 {
		return ""
	}
	views := make([]string, 0, len(entries))
	for _, e := range entries {
		views = append(views, m.renderEntry(e))
	}
	h, _ := m.position.align()
	return lipgloss.JoinVertical(h, views...)
}

func (m *Model) renderEntry(e *Entry) string {
	exiting := e.Notice.Phase() == PhaseExiting
	c := e.Variant.Color()

	// content width inside border and padding
	inner := max(m.width-4, 4)
	icon := styles.IconStyle(c).Render(e.Variant.Icon())
	closeBtn := ""
	if m.showClose {
		closeBtn = styles.MutedStyle().Render(styles.CurrentSymbols().Close)
	}
	msgWidth := max(inner-lipgloss.Width(icon)-lipgloss.Width(closeBtn)-2, 1)
	text := styles.Truncate(e.Message, msgWidth)
	if exiting {
		// collapse to a single dimmed line while leaving
		text = styles.Truncate(e.Message, msgWidth/2)
	}
	gap := max(msgWidth-lipgloss.Width(text), 0)

	line := icon + " " + text + strings.Repeat(" ", gap)
	if closeBtn != "" {
		line += " " + closeBtn
	}
	return styles.NoticeStyle(c, exiting).Render(line)
}

// Place positions the stack inside a width×height area.
func (m *Model) Place(width, height int) string {
	h, v := m.position.align()
	return lipgloss.Place(width, height, h, v, m.View())
}

// ShortHelp returns the bindings for bubbles/help.
func (m *Model) ShortHelp() []key.Binding {
	if !m.showClose || m.Empty() {
		return nil
	}
	return []key.Binding{m.keys.Close}
}

// FullHelp returns all bindings.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.keys.Close}}
}
