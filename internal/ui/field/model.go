package field

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

// Size selects the input width.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Width returns the input width in cells for s. Unknown sizes are medium.
func (s Size) Width() int {
	switch s {
	case SizeSmall:
		return 24
	case SizeLarge:
		return 56
	default:
		return 40
	}
}

// KeyMap holds the field's own bindings. Everything else goes to the
// text input.
type KeyMap struct {
	Clear  key.Binding
	Reveal key.Binding
	Copy   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Reveal: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show/hide")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	}
}

// CopiedMsg reports the result of a clipboard copy.
type CopiedMsg struct {
	Err error
}

// Model renders a Field and routes key presses into it.
type Model struct {
	field *Field
	input textinput.Model
	keys  KeyMap

	label     string
	required  bool
	startIcon string
	endIcon   string
	size      Size
	focused   bool
	status    string

	copyFn func(string) error
	logger *log.Logger
}

// NewModel creates a component for f.
func NewModel(f *Field) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 156
	ti.SetWidth(SizeMedium.Width())
	ti.SetValue(f.Value())

	m := &Model{
		field:  f,
		input:  ti,
		keys:   DefaultKeyMap(),
		size:   SizeMedium,
		copyFn: clipboard.WriteAll,
	}
	m.applyEcho()
	return m
}

// Field returns the engine.
func (m *Model) Field() *Field { return m.field }

// WithLabel sets the label; required appends a marker.
func (m *Model) WithLabel(label string, required bool) *Model {
	m.label = label
	m.required = required
	return m
}

// WithPlaceholder sets the placeholder text.
func (m *Model) WithPlaceholder(placeholder string) *Model {
	m.input.Placeholder = placeholder
	return m
}

// WithSize sets the input width preset.
func (m *Model) WithSize(size Size) *Model {
	m.size = size
	m.input.SetWidth(size.Width())
	return m
}

// WithCharLimit sets the character limit (0 = unlimited).
func (m *Model) WithCharLimit(limit int) *Model {
	m.input.CharLimit = limit
	return m
}

// WithIcons sets decorative start and end icons.
func (m *Model) WithIcons(start, end string) *Model {
	m.startIcon = start
	m.endIcon = end
	return m
}

// WithKeyMap replaces the bindings.
func (m *Model) WithKeyMap(keys KeyMap) *Model {
	m.keys = keys
	return m
}

// WithClipboard replaces the clipboard writer.
func (m *Model) WithClipboard(fn func(string) error) *Model {
	m.copyFn = fn
	return m
}

// WithLogger traces changes to l.
func (m *Model) WithLogger(l *log.Logger) *Model {
	m.logger = l
	return m
}

// Focus focuses the input. Disabled fields stay blurred.
func (m *Model) Focus() tea.Cmd {
	if m.field.disabled {
		return nil
	}
	m.focused = true
	return m.input.Focus()
}

// Blur unfocuses the input.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused reports whether the input has focus.
func (m *Model) Focused() bool { return m.focused }

// Sync pushes a host value into a Controlled field and the input.
func (m *Model) Sync(value string) {
	if m.field.Sync(value) {
		m.reconcile()
	}
}

// HasClearableInput reports whether esc would clear the field. Hosts use
// it to decide whether esc should fall through to cancel.
func (m *Model) HasClearableInput() bool {
	return m.field.ShowClear()
}

// Update handles a message.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CopiedMsg:
		if msg.Err != nil {
			m.status = "copy failed: " + msg.Err.Error()
		} else {
			m.status = "copied"
		}
		return m, nil

	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		m.status = ""

		switch {
		case key.Matches(msg, m.keys.Clear):
			if m.field.ShowClear() && m.field.Clear() {
				m.logger.Debug("field clear", "label", m.label, "mode", m.field.Mode())
				m.reconcile()
			}
			return m, nil
		case key.Matches(msg, m.keys.Reveal):
			if m.field.ShowSecretToggle() {
				m.field.ToggleSecret()
				m.applyEcho()
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyValue()
		}

		if !m.field.editable() {
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.field.Change(after)
			m.logger.Debug("field change", "label", m.label, "mode", m.field.Mode(), "len", len(after))
		}
		m.reconcile()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// copyValue returns a command writing the value to the clipboard.
// A concealed password is never copied.
func (m *Model) copyValue() tea.Cmd {
	if m.field.EffectiveKind() == KindPassword {
		m.status = "reveal the password to copy it"
		return nil
	}
	if !m.field.HasValue() || m.copyFn == nil {
		return nil
	}
	value, fn := m.field.Value(), m.copyFn
	return func() tea.Msg {
		return CopiedMsg{Err: fn(value)}
	}
}

// reconcile makes the input show the effective value. For Controlled
// fields this rolls back text the host has not accepted.
func (m *Model) reconcile() {
	if v := m.field.Value(); m.input.Value() != v {
		m.input.SetValue(v)
	}
}

func (m *Model) applyEcho() {
	if m.field.EffectiveKind() == KindPassword {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
		return
	}
	m.input.EchoMode = textinput.EchoNormal
}

// View renders the label, the framed input with its affordances, and the
// helper or error line.
func (m *Model) View() string {
	s := m.field.State()
	sym := styles.CurrentSymbols()

	input := m.input
	if input.Value() != s.Value {
		input.SetValue(s.Value)
	}

	var parts []string
	if m.startIcon != "" {
		parts = append(parts, styles.AffordanceStyle().Render(m.startIcon))
	}
	parts = append(parts, input.View())

	var trailing []string
	if s.ShowClear {
		trailing = append(trailing, sym.Close)
	}
	if s.ShowSecretToggle {
		if s.Revealed {
			trailing = append(trailing, sym.Conceal)
		} else {
			trailing = append(trailing, sym.Reveal)
		}
	}
	if s.ShowEndAdornment && m.endIcon != "" {
		trailing = append(trailing, m.endIcon)
	}
	if len(trailing) > 0 {
		parts = append(parts, styles.AffordanceStyle().Render(strings.Join(trailing, " ")))
	}

	var b strings.Builder
	if m.label != "" {
		b.WriteString(styles.LabelStyle().Render(m.label))
		if m.required {
			b.WriteString(styles.RequiredStyle().Render(" *"))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.InputStyle(m.focused, s.Invalid, s.Disabled).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(parts)...)))

	switch {
	case s.Message != "" && s.Invalid:
		b.WriteString("\n" + styles.ErrorStyle().Render(s.Message))
	case s.Message != "":
		b.WriteString("\n" + styles.HelperStyle().Render(s.Message))
	}
	if m.status != "" {
		b.WriteString("\n" + styles.MutedStyle().Render(m.status))
	}
	return b.String()
}

// ShortHelp returns the bindings that apply right now, for bubbles/help.
func (m *Model) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if m.field.ShowClear() {
		bindings = append(bindings, m.keys.Clear)
	}
	if m.field.ShowSecretToggle() {
		bindings = append(bindings, m.keys.Reveal)
	}
	if m.field.EffectiveKind() != KindPassword {
		bindings = append(bindings, m.keys.Copy)
	}
	return bindings
}

// FullHelp returns all bindings in one column.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.keys.Clear, m.keys.Reveal, m.keys.Copy}}
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

// String implements fmt.Stringer for debugging.
func (m *Model) String() string {
	s := m.field.State()
	return fmt.Sprintf("field.Model{label=%q, mode=%s, kind=%s, len=%d}",
		m.label, s.Mode, s.EffectiveKind, len(s.Value))
}
