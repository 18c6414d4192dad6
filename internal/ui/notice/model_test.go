package notice

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/tuikit/internal/ui/timer"
)

// firedMsgs runs cmd and collects the timer messages it produces,
// descending into batches.
func firedMsgs(cmd tea.Cmd) []timer.FiredMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case timer.FiredMsg:
		return []timer.FiredMsg{msg}
	case tea.BatchMsg:
		var out []timer.FiredMsg
		for _, c := range msg {
			out = append(out, firedMsgs(c)...)
		}
		return out
	}
	return nil
}

func TestModel_Lifecycle(t *testing.T) {
	m := NewModel()
	removed := ""
	m.Tray().OnRemoved = func(id string) { removed = id }

	cmd := m.Push(Toast{ID: "t", Message: "Saved", Variant: VariantSuccess, Duration: time.Millisecond})
	auto := firedMsgs(cmd)
	if len(auto) != 1 {
		t.Fatalf("got %d timer messages, want 1", len(auto))
	}

	_, cmd = m.Update(auto[0])
	if m.Tray().Get("t").Notice.Phase() != PhaseExiting {
		t.Fatal("auto timer should start the exit")
	}
	exit := firedMsgs(cmd)
	if len(exit) != 1 {
		t.Fatalf("got %d exit messages, want 1", len(exit))
	}

	m.Update(exit[0])
	if !m.Empty() || removed != "t" {
		t.Errorf("Empty() = %v, removed = %q", m.Empty(), removed)
	}
}

func TestModel_CloseKey(t *testing.T) {
	m := NewModel()
	m.Push(Toast{ID: "a", Message: "first"})
	m.Push(Toast{ID: "b", Message: "second"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if m.Tray().Get("b").Notice.Phase() != PhaseExiting {
		t.Error("x should dismiss the latest notice")
	}
	if cmd == nil {
		t.Error("expected the exit timer command")
	}

	hidden := NewModel().WithClose(false)
	hidden.Push(Toast{ID: "a"})
	hidden.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if hidden.Tray().Get("a").Notice.Phase() != PhaseVisible {
		t.Error("close key must be ignored without a close affordance")
	}
}

func TestModel_DismissLatest(t *testing.T) {
	m := NewModel()
	m.Push(Toast{ID: "a", Message: "sticky"})

	fired := firedMsgs(m.DismissLatest())
	if len(fired) != 1 {
		t.Fatalf("got %d timer ticks, want the exit timer", len(fired))
	}
	m.Update(fired[0])
	if !m.Empty() {
		t.Errorf("Len() = %d after the exit timer fired", m.Tray().Len())
	}
}

func TestModel_StoppedTickDropped(t *testing.T) {
	m := NewModel()
	auto := firedMsgs(m.Push(Toast{ID: "a", Duration: time.Millisecond}))
	m.Dismiss("a")
	m.Tray().Get("a").Notice.Destroy()

	_, cmd := m.Update(auto[0])
	if cmd != nil {
		t.Error("stopped tick should not arm anything")
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel().WithWidth(30)
	if m.View() != "" {
		t.Error("empty model should render nothing")
	}

	m.Push(Toast{ID: "a", Message: "Profile updated", Variant: VariantSuccess})
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Profile updated") || !strings.Contains(view, "×") {
		t.Errorf("View() = %q", view)
	}

	placed := m.WithPosition(TopLeft).Place(60, 8)
	lines := strings.Split(placed, "\n")
	if len(lines) != 8 || !strings.Contains(ansi.Strip(lines[1]), "Profile") {
		t.Errorf("Place() top-left layout wrong:\n%s", ansi.Strip(placed))
	}
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", VariantInfo, false},
		{"success", VariantSuccess, false},
		{"warning", VariantWarning, false},
		{"fatal", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseVariant(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestPosition_Align(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  Position
		h, v lipgloss.Position
	}{
		{TopLeft, lipgloss.Left, lipgloss.Top},
		{TopCenter, lipgloss.Center, lipgloss.Top},
		{TopRight, lipgloss.Right, lipgloss.Top},
		{BottomLeft, lipgloss.Left, lipgloss.Bottom},
		{BottomCenter, lipgloss.Center, lipgloss.Bottom},
		{BottomRight, lipgloss.Right, lipgloss.Bottom},
	}
	for _, tt := range tests {
		if h, v := tt.pos.align(); h != tt.h || v != tt.v {
			t.Errorf("%s.align() = %v, %v; want %v, %v", tt.pos, h, v, tt.h, tt.v)
		}
	}
}
