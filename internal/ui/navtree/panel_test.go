package navtree

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/tuikit/internal/ui/overlay"
)

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

func newOpenPanel(t *testing.T, opts Options) *Panel {
	t.Helper()
	p := NewPanel(New(NewTree(sampleItems()), opts))
	p.Open()
	return p
}

func TestPanel_Navigation(t *testing.T) {
	p := newOpenPanel(t, Options{})

	p.Update(keyMsg("right")) // expand root
	if !p.State().IsExpanded("root") {
		t.Fatal("right should expand root")
	}

	p.Update(keyMsg("down"))
	p.Update(keyMsg("enter")) // expand a
	if !p.State().IsExpanded("a") {
		t.Fatal("enter should expand a")
	}

	p.Update(keyMsg("j"))
	p.Update(keyMsg("j"))
	if p.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3 (a2)", p.Cursor())
	}

	p.Update(keyMsg("left")) // leaf: jump to parent
	if p.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1 (a)", p.Cursor())
	}
	p.Update(keyMsg("left")) // collapse a
	if p.State().IsExpanded("a") {
		t.Error("left should collapse a")
	}

	p.Update(keyMsg("k"))
	p.Update(keyMsg("k"))
	if p.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", p.Cursor())
	}
}

func TestPanel_CursorClampedAfterCollapse(t *testing.T) {
	p := newOpenPanel(t, Options{})
	p.State().Toggle("root")
	p.State().Toggle("a")
	for range 4 {
		p.Update(keyMsg("down"))
	}
	if p.Cursor() != 4 {
		t.Fatalf("Cursor() = %d, want 4", p.Cursor())
	}

	p.State().Toggle("root")
	p.Update(keyMsg("space"))
	if !p.State().IsExpanded("root") || p.Cursor() != 0 {
		t.Errorf("root expanded = %v, cursor = %d", p.State().IsExpanded("root"), p.Cursor())
	}
}

func TestPanel_SelectLeaf(t *testing.T) {
	closed := false
	p := newOpenPanel(t, Options{OnClose: func() { closed = true }})
	p.State().Reveal("b")
	p.Update(keyMsg("down"))
	p.Update(keyMsg("down")) // root, a, b

	_, cmd := p.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected ActivatedMsg command")
	}
	msg, ok := cmd().(ActivatedMsg)
	if !ok || msg.Activation.ID != "b" || !msg.Activation.Closed {
		t.Errorf("msg = %+v", msg)
	}
	if !closed || p.State().IsOpen() {
		t.Error("selecting a plain leaf should close the menu")
	}
	if p.View() != "" {
		t.Error("closed panel should render nothing")
	}
}

func TestPanel_Cancel(t *testing.T) {
	stack := overlay.NewStack()
	p := newOpenPanel(t, Options{Stack: stack})

	p.Update(keyMsg("/"))
	if !p.Searching() {
		t.Fatal("/ should enter search mode")
	}
	p.Update(keyMsg("esc"))
	if p.Searching() || !p.State().IsOpen() {
		t.Error("first esc should only leave search mode")
	}
	p.Update(keyMsg("esc"))
	if p.State().IsOpen() || stack.Active() {
		t.Error("second esc should close the menu and release the overlay")
	}
	if p.Cancel() {
		t.Error("Cancel() on closed panel = true")
	}
}

func TestPanel_Search(t *testing.T) {
	p := newOpenPanel(t, Options{})

	p.Update(keyMsg("/"))
	for _, r := range "two" {
		p.Update(keyMsg(string(r)))
	}
	view := ansi.Strip(p.View())
	if !strings.Contains(view, "Alpha Two") || !strings.Contains(view, "Root › Alpha") {
		t.Errorf("search view = %q", view)
	}

	_, cmd := p.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected activation")
	}
	if a := cmd().(ActivatedMsg).Activation; a.ID != "a2" || a.Href == "" {
		t.Errorf("activation = %+v", a)
	}
	if p.Searching() {
		t.Error("search should end after selection")
	}
	if !p.State().Visible("a2") || p.Cursor() != 3 {
		t.Errorf("a2 visible = %v, cursor = %d", p.State().Visible("a2"), p.Cursor())
	}
}

func TestPanel_View(t *testing.T) {
	p := newOpenPanel(t, Options{})
	p.WithTitle("Navigation").WithWidth(30)
	p.State().Toggle("root")

	view := ansi.Strip(p.View())
	for _, want := range []string{"Navigation", "Root", "Alpha", "Beta"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Alpha One") {
		t.Error("collapsed children rendered")
	}

	placed := p.WithSide(SideLeft).Place(80, 10)
	if got := strings.Count(placed, "\n"); got != 9 {
		t.Errorf("Place() height = %d lines, want 10", got+1)
	}
}

func TestPanel_ClosedIgnoresKeys(t *testing.T) {
	p := NewPanel(New(NewTree(sampleItems()), Options{}))
	p.Update(keyMsg("enter"))
	if p.State().IsExpanded("root") {
		t.Error("closed panel handled a key")
	}
}
