package apps

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/field"
	"github.com/raphi011/tuikit/internal/ui/navtree"
	"github.com/raphi011/tuikit/internal/ui/notice"
	"github.com/raphi011/tuikit/internal/ui/overlay"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

type demoKeys struct {
	Next   key.Binding
	Menu   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultDemoKeys() demoKeys {
	return demoKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Menu:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "menu")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// demoApp is a profile form with a navigation panel and notifications.
// The username is controlled (lowercased by the host), the password is
// uncontrolled.
type demoApp struct {
	cfg    config.Config
	logger *log.Logger
	keys   demoKeys
	help   help.Model

	stack  *overlay.Stack
	panel  *navtree.Panel
	toasts *notice.Model

	username string
	fields   []*field.Model
	focus    int

	width  int
	height int
	quit   bool
}

func newDemoApp(cfg config.Config, items []navtree.Item, logger *log.Logger) *demoApp {
	a := &demoApp{
		cfg:    cfg,
		logger: logger,
		keys:   defaultDemoKeys(),
		help:   help.New(),
		stack:  overlay.NewStack(),
		width:  100,
		height: 30,
	}

	size := field.Size(cfg.Field.Size)
	userField := field.NewControlled("", field.Options{
		Clearable:  cfg.Field.Clearable,
		HelperText: "Lowercase letters only",
		OnChange:   a.onUsername,
	})
	passField := field.NewUncontrolled("", field.Options{
		Kind:       field.KindPassword,
		Clearable:  cfg.Field.Clearable,
		HelperText: "At least 8 characters",
		OnChange: func(v string) {
			logger.Debug("password change", "len", len(v))
		},
	})
	a.fields = []*field.Model{
		field.NewModel(userField).WithLabel("Username", true).WithPlaceholder("jdoe").
			WithSize(size).WithCharLimit(cfg.Field.CharLimit).WithLogger(logger),
		field.NewModel(passField).WithLabel("Password", true).
			WithSize(size).WithCharLimit(cfg.Field.CharLimit).WithLogger(logger),
	}

	state := navtree.New(navtree.NewTree(items), navtree.Options{
		Owner:       "menu",
		Stack:       a.stack,
		ResetOnOpen: cfg.Menu.ResetOnOpen,
		OnClose: func() {
			logger.Debug("menu closed")
		},
	})
	a.panel = navtree.NewPanel(state).
		WithTitle(cfg.Menu.Title).
		WithWidth(cfg.Menu.Width).
		WithSide(navtree.Side(cfg.Menu.Position)).
		WithLogger(logger)

	a.toasts = notice.NewModel().
		WithPosition(notice.Position(cfg.Toast.Position)).
		WithClose(cfg.Toast.ShowClose).
		WithLogger(logger)
	return a
}

func (a *demoApp) onUsername(v string) {
	a.username = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, v)
	a.fields[0].Sync(a.username)
}

func (a *demoApp) toastDuration() time.Duration {
	return time.Duration(a.cfg.Toast.DurationMs) * time.Millisecond
}

func (a *demoApp) push(msg string, variant notice.Variant) tea.Cmd {
	return a.toasts.Push(notice.Toast{
		ID:       "demo-" + string(variant),
		Message:  msg,
		Variant:  variant,
		Duration: a.toastDuration(),
	})
}

func (a *demoApp) Init() tea.Cmd {
	return tea.Batch(a.fields[0].Focus(), a.push("Press ctrl+o for the menu", notice.VariantInfo))
}

func (a *demoApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyPressMsg); !isKey {
		a.toasts, cmd = a.toasts.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, tea.Batch(cmds...)

	case navtree.ActivatedMsg:
		act := msg.Activation
		if act.Href != "" {
			a.panel.State().Close()
			cmds = append(cmds, a.push("Open "+styles.Hyperlink(act.Href, act.Href), notice.VariantInfo))
		} else {
			cmds = append(cmds, a.push("Selected "+act.ID, notice.VariantSuccess))
		}
		return a, tea.Batch(cmds...)

	case tea.KeyPressMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.teardown()
			a.quit = true
			return a, tea.Quit
		}
		if a.stack.Top() == "menu" {
			// host-level cancel goes to the overlay owner
			if key.Matches(msg, a.keys.Cancel) {
				a.panel.Cancel()
				return a, tea.Batch(cmds...)
			}
			a.panel, cmd = a.panel.Update(msg)
			return a, tea.Batch(append(cmds, cmd)...)
		}

		switch {
		case key.Matches(msg, a.keys.Menu):
			a.panel.Open()
			return a, tea.Batch(cmds...)
		case key.Matches(msg, a.keys.Next):
			return a, tea.Batch(append(cmds, a.cycleFocus())...)
		case key.Matches(msg, a.keys.Save):
			return a, tea.Batch(append(cmds, a.save())...)
		case key.Matches(msg, a.keys.Cancel) && !a.fields[a.focus].HasClearableInput():
			// esc on an empty field dismisses the latest notice
			return a, tea.Batch(append(cmds, a.toasts.DismissLatest())...)
		}
	}

	for _, f := range a.fields {
		_, cmd = f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *demoApp) cycleFocus() tea.Cmd {
	a.fields[a.focus].Blur()
	a.focus = (a.focus + 1) % len(a.fields)
	return a.fields[a.focus].Focus()
}

func (a *demoApp) save() tea.Cmd {
	user := a.fields[0].Field()
	pass := a.fields[1].Field()

	ok := true
	if user.Value() == "" {
		user.SetInvalid(true, "Username is required")
		ok = false
	} else {
		user.SetInvalid(false, "")
	}
	if n := len([]rune(pass.Value())); n < 8 {
		pass.SetInvalid(true, fmt.Sprintf("Password too short (%d/8)", n))
		ok = false
	} else {
		pass.SetInvalid(false, "")
	}

	if !ok {
		return a.push("Please fix the highlighted fields", notice.VariantError)
	}
	return a.push("Saved profile for "+user.Value(), notice.VariantSuccess)
}

func (a *demoApp) teardown() {
	a.panel.State().Destroy()
	a.toasts.Destroy()
}

func (a *demoApp) View() tea.View {
	if a.quit {
		return tea.NewView("")
	}

	var form strings.Builder
	form.WriteString(styles.TitleStyle().Render("Profile") + "\n\n")
	for _, f := range a.fields {
		form.WriteString(f.View() + "\n\n")
	}
	content := form.String()
	if a.cfg.Menu.ShowOverlay && a.stack.Active() {
		content = styles.BackdropStyle().Render(content)
	}

	toastHeight := 8
	mainHeight := max(a.height-toastHeight-1, 1)
	main := lipgloss.Place(a.width, mainHeight, lipgloss.Left, lipgloss.Top, content)
	if a.panel.State().IsOpen() {
		panel := a.panel.View()
		mainWidth := max(a.width-lipgloss.Width(panel), 1)
		main = lipgloss.Place(mainWidth, mainHeight, lipgloss.Left, lipgloss.Top, content)
		if a.panel.Side() == navtree.SideLeft {
			main = lipgloss.JoinHorizontal(lipgloss.Top, panel, main)
		} else {
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, panel)
		}
	}

	toasts := a.toasts.Place(a.width, toastHeight)
	helpLine := styles.HelperStyle().Render(a.help.View(a.helpKeys()))

	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, main, toasts, helpLine))
	v.AltScreen = true
	return v
}

func (a *demoApp) helpKeys() helpKeys {
	if a.stack.Active() {
		return helpKeys(a.panel.ShortHelp())
	}
	keys := helpKeys{a.keys.Next, a.keys.Menu, a.keys.Save}
	keys = append(keys, a.fields[a.focus].ShortHelp()...)
	keys = append(keys, a.toasts.ShortHelp()...)
	return append(keys, a.keys.Quit)
}

// RunDemo runs the combined widget demo.
func RunDemo(cfg config.Config, items []navtree.Item, logger *log.Logger) error {
	_, err := run(newDemoApp(cfg, items, logger))
	return err
}
