package apps

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/ui/navtree"
	"github.com/raphi011/tuikit/internal/ui/notice"
	"github.com/raphi011/tuikit/internal/ui/timer"
)

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+o":
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

func typeInto(m tea.Model, text string) {
	for _, r := range text {
		m.Update(keyMsg(string(r)))
	}
}

// collect runs cmd and returns its messages, flattening batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

// isQuit reports whether cmd produces tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFieldApp_Controlled(t *testing.T) {
	a := newFieldApp(FieldParams{Label: "Code", Controlled: true, Upper: true})
	a.Init()

	typeInto(a, "ab1")
	if a.value != "AB1" || a.input.Field().Value() != "AB1" {
		t.Errorf("value = %q, field = %q", a.value, a.input.Field().Value())
	}

	_, cmd := a.Update(keyMsg("enter"))
	if !isQuit(cmd) || !a.done {
		t.Error("enter should submit")
	}
}

func TestFieldApp_Validation(t *testing.T) {
	a := newFieldApp(FieldParams{Label: "Password", Password: true, Required: true, MinLength: 4})
	a.Init()

	if _, cmd := a.Update(keyMsg("enter")); cmd != nil || a.done {
		t.Fatal("empty required field should not submit")
	}
	if s := a.input.Field().State(); !s.Invalid || s.Message != "This field is required" {
		t.Errorf("State() = %+v", s)
	}

	typeInto(a, "abc")
	if s := a.input.Field().State(); !s.Invalid || !strings.Contains(s.Message, "4") {
		t.Errorf("State() = %+v", s)
	}
	typeInto(a, "d")
	if a.input.Field().State().Invalid {
		t.Error("field should be valid at min length")
	}
}

func TestFieldApp_EscClearsThenCancels(t *testing.T) {
	a := newFieldApp(FieldParams{Initial: "x", Clearable: true})
	a.Init()

	if _, cmd := a.Update(keyMsg("esc")); isQuit(cmd) {
		t.Fatal("first esc should clear, not quit")
	}
	if a.input.Field().Value() != "" {
		t.Errorf("Value() = %q after clear", a.input.Field().Value())
	}
	if _, cmd := a.Update(keyMsg("esc")); !isQuit(cmd) || !a.cancelled {
		t.Error("esc on empty field should cancel")
	}
}

func TestMenuApp_Select(t *testing.T) {
	a := newMenuApp(MenuParams{Title: "Nav", Items: DemoItems()})

	// Home is the first row and a plain leaf.
	_, cmd := a.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected activation command")
	}
	_, cmd = a.Update(cmd())
	if !isQuit(cmd) || a.result == nil || a.result.ID != "home" {
		t.Errorf("result = %+v", a.result)
	}
	if a.stack.Active() {
		t.Error("overlay lease leaked")
	}
}

func TestMenuApp_Cancel(t *testing.T) {
	a := newMenuApp(MenuParams{Items: DemoItems()})
	if !a.stack.Active() {
		t.Fatal("menu should hold the overlay while open")
	}
	_, cmd := a.Update(keyMsg("esc"))
	if !isQuit(cmd) || !a.cancelled || a.result != nil {
		t.Errorf("cancelled = %v, result = %+v", a.cancelled, a.result)
	}
	if a.stack.Active() {
		t.Error("overlay lease leaked")
	}
}

func TestToastApp_QuitsWhenGone(t *testing.T) {
	a := newToastApp(ToastParams{Message: "hi", Variant: notice.VariantSuccess, Duration: time.Millisecond, ShowClose: true})
	cmd := a.Init()

	for range 2 {
		msgs := collect(cmd)
		if len(msgs) != 1 {
			t.Fatalf("got %d messages, want 1 timer tick", len(msgs))
		}
		fired, ok := msgs[0].(timer.FiredMsg)
		if !ok {
			t.Fatalf("expected timer.FiredMsg, got %T", msgs[0])
		}
		_, cmd = a.Update(fired)
		if cmd == nil {
			t.Fatal("expected a follow-up command")
		}
	}
	if !isQuit(cmd) || !a.done {
		t.Error("app should quit once the toast is gone")
	}
}

func TestToastApp_QuitKeyTearsDown(t *testing.T) {
	a := newToastApp(ToastParams{Message: "sticky"})
	a.Init()
	if _, cmd := a.Update(keyMsg("q")); !isQuit(cmd) {
		t.Error("q should quit")
	}
	if !a.toasts.Empty() {
		t.Error("toasts not torn down")
	}
}

func newTestDemo(t *testing.T) *demoApp {
	t.Helper()
	cfg := config.Default()
	cfg.Toast.DurationMs = 0
	a := newDemoApp(cfg, DemoItems(), nil)
	a.Init()
	return a
}

func TestDemo_EscCancelsMenu(t *testing.T) {
	a := newTestDemo(t)

	a.Update(keyMsg("ctrl+o"))
	if a.stack.Top() != "menu" {
		t.Fatal("ctrl+o should open the menu")
	}
	typeInto(a, "x")
	if a.fields[0].Field().Value() != "" {
		t.Error("keys leaked to the field while the menu is open")
	}

	a.Update(keyMsg("esc"))
	if a.stack.Active() || a.panel.State().IsOpen() {
		t.Error("esc should cancel the menu")
	}
	if a.toasts.Tray().Len() != 1 {
		t.Errorf("esc with open menu touched notices: Len() = %d", a.toasts.Tray().Len())
	}
}

func TestDemo_EscDismissesNotice(t *testing.T) {
	a := newTestDemo(t)
	if a.toasts.Tray().Len() != 1 {
		t.Fatalf("Len() = %d, want the welcome notice", a.toasts.Tray().Len())
	}

	_, cmd := a.Update(keyMsg("esc"))
	var fired []timer.FiredMsg
	for _, msg := range collect(cmd) {
		if f, ok := msg.(timer.FiredMsg); ok {
			fired = append(fired, f)
		}
	}
	if len(fired) != 1 {
		t.Fatalf("got %d timer ticks after esc, want the exit timer", len(fired))
	}
	a.Update(fired[0])
	if a.toasts.Tray().Len() != 0 {
		t.Errorf("Len() = %d, notice stuck after esc", a.toasts.Tray().Len())
	}
}

func TestDemo_ControlledUsername(t *testing.T) {
	a := newTestDemo(t)
	typeInto(a, "Ab-C")
	if got := a.fields[0].Field().Value(); got != "abc" {
		t.Errorf("username = %q, want %q", got, "abc")
	}
}

func TestDemo_Save(t *testing.T) {
	a := newTestDemo(t)

	a.Update(keyMsg("ctrl+s"))
	e := a.toasts.Tray().Get("demo-error")
	if e == nil || !a.fields[0].Field().State().Invalid || !a.fields[1].Field().State().Invalid {
		t.Fatal("save with empty form should flag both fields")
	}

	typeInto(a, "jdoe")
	a.Update(keyMsg("tab"))
	typeInto(a, "hunter22")
	a.Update(keyMsg("ctrl+s"))
	if a.toasts.Tray().Get("demo-success") == nil {
		t.Error("valid save should push a success notice")
	}
	if a.fields[1].Field().State().Invalid {
		t.Error("password should be valid")
	}
}

func TestDemo_MenuSelectionNotifies(t *testing.T) {
	a := newTestDemo(t)
	a.Update(keyMsg("ctrl+o"))
	_, cmd := a.Update(keyMsg("enter")) // Home
	var act tea.Msg
	for _, m := range collect(cmd) {
		if _, ok := m.(navtree.ActivatedMsg); ok {
			act = m
		}
	}
	if act == nil {
		t.Fatal("expected navtree.ActivatedMsg")
	}
	a.Update(act)
	if e := a.toasts.Tray().Get("demo-success"); e == nil || !strings.Contains(e.Message, "home") {
		t.Error("selection should push a notice")
	}
}

func TestDemo_QuitTearsDown(t *testing.T) {
	a := newTestDemo(t)
	a.Update(keyMsg("ctrl+o"))
	if _, cmd := a.Update(keyMsg("ctrl+c")); !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}
	if a.stack.Active() || a.toasts.Tray().Len() != 0 {
		t.Error("teardown left resources behind")
	}
}

func TestParseItems(t *testing.T) {
	t.Parallel()

	content := `
[[item]]
id = "settings"
label = "Settings"

  [[item.children]]
  label = "Profile"
  href = "https://example.com/profile"

[[item]]
label = "Help"
disabled = true
`
	items, err := ParseItems(content)
	if err != nil {
		t.Fatalf("ParseItems() error = %v", err)
	}
	if len(items) != 2 || items[0].ID != "settings" || len(items[0].Children) != 1 {
		t.Fatalf("items = %+v", items)
	}
	child := items[0].Children[0]
	if child.ID != "Profile" || child.Href != "https://example.com/profile" {
		t.Errorf("child = %+v", child)
	}
	if !items[1].Disabled {
		t.Error("Help should be disabled")
	}
}

func TestParseItems_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty", ``, "no [[item]]"},
		{"missing label", "[[item]]\nid = \"x\"\n", "label is required"},
		{"nested missing label", "[[item]]\nlabel = \"a\"\n[[item.children]]\nid = \"b\"\n", "item[0].children[0]"},
		{"bad toml", "[[item]\n", "parse menu file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseItems(tt.content)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseItems() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
