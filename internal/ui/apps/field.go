package apps

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/field"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

// FieldParams configures RunField.
type FieldParams struct {
	Label       string
	Placeholder string
	Helper      string
	Initial     string
	Required    bool
	Password    bool
	Clearable   bool
	Size        field.Size
	CharLimit   int

	// Controlled makes the app own the value. Upper is a host filter
	// applied to controlled values before they are synced back.
	Controlled bool
	Upper      bool

	// MinLength marks the field invalid while the value is shorter.
	MinLength int

	Logger *log.Logger
}

// FieldResult is the submitted value.
type FieldResult struct {
	Value string
}

// helpKeys adapts a flat binding list to help.KeyMap.
type helpKeys []key.Binding

func (k helpKeys) ShortHelp() []key.Binding  { return k }
func (k helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

type fieldAppKeys struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultFieldAppKeys() fieldAppKeys {
	return fieldAppKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

type fieldApp struct {
	params FieldParams
	keys   fieldAppKeys
	help   help.Model

	// value is the host-owned value in controlled mode.
	value string
	input *field.Model

	done      bool
	cancelled bool
}

func newFieldApp(p FieldParams) *fieldApp {
	a := &fieldApp{
		params: p,
		keys:   defaultFieldAppKeys(),
		help:   help.New(),
		value:  p.Initial,
	}

	kind := field.KindText
	if p.Password {
		kind = field.KindPassword
	}
	opts := field.Options{
		Kind:       kind,
		Clearable:  p.Clearable,
		HelperText: p.Helper,
		OnChange:   a.onChange,
	}

	var f *field.Field
	if p.Controlled {
		f = field.NewControlled(a.value, opts)
	} else {
		f = field.NewUncontrolled(p.Initial, opts)
	}

	a.input = field.NewModel(f).
		WithLabel(p.Label, p.Required).
		WithPlaceholder(p.Placeholder).
		WithLogger(p.Logger)
	if p.Size != "" {
		a.input.WithSize(p.Size)
	}
	if p.CharLimit > 0 {
		a.input.WithCharLimit(p.CharLimit)
	}
	return a
}

func (a *fieldApp) onChange(v string) {
	if a.params.Controlled {
		if a.params.Upper {
			v = strings.ToUpper(v)
		}
		a.value = v
		a.input.Sync(a.value)
	}
	a.validate()
}

func (a *fieldApp) validate() bool {
	f := a.input.Field()
	n := utf8.RuneCountInString(f.Value())
	switch {
	case a.params.Required && n == 0:
		f.SetInvalid(true, "This field is required")
	case a.params.MinLength > 0 && n < a.params.MinLength:
		f.SetInvalid(true, fmt.Sprintf("At least %d characters", a.params.MinLength))
	default:
		f.SetInvalid(false, "")
		return true
	}
	return false
}

func (a *fieldApp) Init() tea.Cmd {
	return a.input.Focus()
}

func (a *fieldApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(k, a.keys.Quit):
			a.cancelled = true
			return a, tea.Quit
		case key.Matches(k, a.keys.Submit):
			if !a.validate() {
				return a, nil
			}
			a.done = true
			return a, tea.Quit
		case key.Matches(k, a.keys.Cancel) && !a.input.HasClearableInput():
			a.cancelled = true
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *fieldApp) View() tea.View {
	if a.done || a.cancelled {
		return tea.NewView("")
	}
	bindings := append(helpKeys{a.keys.Submit}, a.input.ShortHelp()...)
	if !a.input.HasClearableInput() {
		bindings = append(bindings, a.keys.Cancel)
	}
	body := a.input.View() + "\n\n" + styles.HelperStyle().Render(a.help.View(bindings))
	return tea.NewView(body + "\n")
}

// RunField runs an interactive text field and returns the submitted value.
func RunField(p FieldParams) (FieldResult, error) {
	final, err := run(newFieldApp(p))
	if err != nil {
		return FieldResult{}, err
	}
	a := final.(*fieldApp)
	if a.cancelled {
		return FieldResult{}, ErrCancelled
	}
	return FieldResult{Value: a.input.Field().Value()}, nil
}
