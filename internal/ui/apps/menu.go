package apps

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/navtree"
	"github.com/raphi011/tuikit/internal/ui/overlay"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

// MenuParams configures RunMenu.
type MenuParams struct {
	Title       string
	Items       []navtree.Item
	Side        navtree.Side
	Width       int
	ResetOnOpen bool
	ShowOverlay bool
	Logger      *log.Logger
}

// MenuResult is the selected leaf.
type MenuResult struct {
	ID   string
	Href string
}

type menuApp struct {
	stack *overlay.Stack
	panel *navtree.Panel
	help  help.Model
	quit  key.Binding

	overlay bool
	width   int
	height  int

	result    *navtree.Activation
	cancelled bool
}

func newMenuApp(p MenuParams) *menuApp {
	a := &menuApp{
		stack:   overlay.NewStack(),
		help:    help.New(),
		quit:    key.NewBinding(key.WithKeys("ctrl+c")),
		overlay: p.ShowOverlay,
		width:   80,
		height:  24,
	}
	state := navtree.New(navtree.NewTree(p.Items), navtree.Options{
		Owner:       "menu",
		Stack:       a.stack,
		ResetOnOpen: p.ResetOnOpen,
	})
	a.panel = navtree.NewPanel(state).WithLogger(p.Logger)
	if p.Title != "" {
		a.panel.WithTitle(p.Title)
	}
	if p.Side != "" {
		a.panel.WithSide(p.Side)
	}
	if p.Width > 0 {
		a.panel.WithWidth(p.Width)
	}
	a.panel.Open()
	return a
}

func (a *menuApp) Init() tea.Cmd { return nil }

func (a *menuApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyPressMsg:
		if key.Matches(msg, a.quit) {
			a.cancelled = true
			a.panel.State().Destroy()
			return a, tea.Quit
		}
	case navtree.ActivatedMsg:
		act := msg.Activation
		a.result = &act
		// a link keeps the menu open; the host navigates and closes it
		a.panel.State().Destroy()
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.panel, cmd = a.panel.Update(msg)
	// closed without a pending activation means the user backed out
	if !a.panel.State().IsOpen() && cmd == nil {
		a.cancelled = true
		return a, tea.Quit
	}
	return a, cmd
}

func (a *menuApp) View() tea.View {
	if a.result != nil || a.cancelled {
		return tea.NewView("")
	}
	background := styles.MutedStyle().Render("Select an item from the menu.")
	if a.overlay && a.stack.Active() {
		background = styles.BackdropStyle().Render(background)
	}

	helpLine := styles.HelperStyle().Render(a.help.View(helpKeys(a.panel.ShortHelp())))
	panelHeight := max(a.height-2, 1)
	placed := a.panel.Place(a.width, panelHeight)

	var b strings.Builder
	b.WriteString(lipgloss.Place(a.width, 1, lipgloss.Left, lipgloss.Top, background))
	b.WriteString("\n")
	b.WriteString(placed)
	b.WriteString("\n")
	b.WriteString(helpLine)
	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

// RunMenu runs the navigation panel and returns the selected leaf.
func RunMenu(p MenuParams) (MenuResult, error) {
	final, err := run(newMenuApp(p))
	if err != nil {
		return MenuResult{}, err
	}
	a := final.(*menuApp)
	if a.result == nil {
		return MenuResult{}, ErrCancelled
	}
	return MenuResult{ID: a.result.ID, Href: a.result.Href}, nil
}
