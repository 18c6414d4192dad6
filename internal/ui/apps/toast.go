package apps

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/notice"
)

// ToastParams configures RunToast.
type ToastParams struct {
	Message   string
	Variant   notice.Variant
	Duration  time.Duration
	Position  notice.Position
	ShowClose bool
	Width     int
	Logger    *log.Logger
}

type toastApp struct {
	toasts *notice.Model
	first  notice.Toast
	quit   key.Binding

	width  int
	height int
	done   bool
}

func newToastApp(p ToastParams) *toastApp {
	m := notice.NewModel().
		WithClose(p.ShowClose).
		WithLogger(p.Logger)
	if p.Position != "" {
		m.WithPosition(p.Position)
	}
	if p.Width > 0 {
		m.WithWidth(p.Width)
	}
	return &toastApp{
		toasts: m,
		first:  notice.Toast{Message: p.Message, Variant: p.Variant, Duration: p.Duration},
		quit:   key.NewBinding(key.WithKeys("ctrl+c", "enter", "q")),
		width:  80,
		height: 12,
	}
}

func (a *toastApp) Init() tea.Cmd {
	return a.toasts.Push(a.first)
}

func (a *toastApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, min(msg.Height, 12)
		return a, nil
	case tea.KeyPressMsg:
		if key.Matches(msg, a.quit) {
			a.toasts.Destroy()
			a.done = true
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.toasts, cmd = a.toasts.Update(msg)
	if a.toasts.Empty() {
		a.done = true
		return a, tea.Quit
	}
	return a, cmd
}

func (a *toastApp) View() tea.View {
	if a.done {
		return tea.NewView("")
	}
	return tea.NewView(a.toasts.Place(a.width, a.height))
}

// RunToast shows a single notification until it is gone.
func RunToast(p ToastParams) error {
	_, err := run(newToastApp(p))
	return err
}
