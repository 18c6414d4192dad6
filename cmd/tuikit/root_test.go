package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/output"
)

// execute runs a fresh command tree and returns everything written to
// stdout.
func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)
	if cfg != nil {
		ctx = config.WithConfig(ctx, cfg)
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestCommandGroups(t *testing.T) {
	want := map[string]string{
		"field":      GroupWidget,
		"menu":       GroupWidget,
		"toast":      GroupWidget,
		"demo":       GroupWidget,
		"config":     GroupConfig,
		"completion": GroupConfig,
	}
	cmds := newRootCmd().Commands()
	if len(cmds) != len(want) {
		t.Errorf("got %d commands, want %d", len(cmds), len(want))
	}
	for _, c := range cmds {
		if got, ok := want[c.Name()]; !ok || got != c.GroupID {
			t.Errorf("%s: GroupID = %q, want %q", c.Name(), c.GroupID, got)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "--version")
	if err != nil {
		t.Fatalf("--version error = %v", err)
	}
	if !strings.HasPrefix(out, "tuikit dev (none, unknown, ") {
		t.Errorf("--version = %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuikit", "config.toml")
	t.Setenv(config.EnvConfigPath, path)

	out, err := execute(t, nil, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q should name %s", out, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if string(data) != config.DefaultConfig() {
		t.Error("written config differs from the default")
	}

	if _, err := execute(t, nil, "config", "init"); err == nil || !strings.Contains(err.Error(), "-f") {
		t.Errorf("second init error = %v, want hint about -f", err)
	}
	if _, err := execute(t, nil, "config", "init", "-f"); err != nil {
		t.Errorf("init -f error = %v", err)
	}
}

func TestConfigInit_Stdout(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))

	out, err := execute(t, nil, "config", "init", "--stdout")
	if err != nil {
		t.Fatalf("config init -s error = %v", err)
	}
	if out != config.DefaultConfig() {
		t.Errorf("stdout = %q", out)
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))

	cfg := config.Default()
	cfg.Menu.Title = "Nav"
	cfg.Toast.DurationMs = 0

	out, err := execute(t, &cfg, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"[menu]", `title = "Nav"`, "duration_ms = 0", "[field]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// shown config is valid input
	parsed, err := config.Parse(out)
	if err != nil {
		t.Fatalf("Parse(show output) error = %v", err)
	}
	if parsed.Menu.Title != "Nav" || parsed.Toast.DurationMs != 0 {
		t.Errorf("round trip lost values: %+v", parsed)
	}
}

func TestWidgetFlagValidation(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"field size", []string{"field", "--size", "xl"}, `"sm", "md", or "lg"`},
		{"menu position", []string{"menu", "--position", "top"}, `"left" or "right"`},
		{"menu file", []string{"menu", "--file", "does-not-exist.toml"}, "read menu file"},
		{"toast variant", []string{"toast", "--variant", "loud", "hi"}, "invalid variant"},
		{"toast duration", []string{"toast", "-d", "-1s", "hi"}, "must not be negative"},
		{"toast position", []string{"toast", "--position", "middle", "hi"}, "invalid position"},
		{"toast message", []string{"toast"}, "requires at least 1 arg"},
		{"verbose and quiet", []string{"config", "show", "-v", "-q"}, "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, nil, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestToastHelp_NoClose(t *testing.T) {
	var toast *cobra.Command
	for _, c := range newRootCmd().Commands() {
		if c.Name() == "toast" {
			toast = c
		}
	}
	if toast == nil {
		t.Fatal("toast command missing")
	}
	if toast.Flags().Lookup("no-close") == nil {
		t.Fatal("--no-close flag missing")
	}
	if !strings.Contains(toast.Long, "--no-close until the command exits") {
		t.Errorf("Long does not describe sticky toasts without a close key:\n%s", toast.Long)
	}
}
