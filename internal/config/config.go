package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ThemeConfig holds theme/color configuration for UI components
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset family: "default", "dracula", "nord", ...
	Mode     string `toml:"mode"`     // "auto", "light", or "dark"
	Primary  string `toml:"primary"`  // main accent color (borders, titles)
	Accent   string `toml:"accent"`   // highlight color (selected items)
	Success  string `toml:"success"`  // success notices
	Error    string `toml:"error"`    // error notices and messages
	Muted    string `toml:"muted"`    // disabled/inactive text
	Normal   string `toml:"normal"`   // standard text
	Info     string `toml:"info"`     // info notices and helper text
	Warning  string `toml:"warning"`  // warning notices
	Nerdfont bool   `toml:"nerdfont"` // use nerd font glyphs for icons
}

// FieldConfig holds text field defaults
type FieldConfig struct {
	Size      string `toml:"size"`       // "sm", "md", or "lg"
	CharLimit int    `toml:"char_limit"` // 0 = unlimited
	Clearable bool   `toml:"clearable"`
}

// MenuConfig holds navigation panel defaults
type MenuConfig struct {
	Title       string `toml:"title"`
	Position    string `toml:"position"` // "left" or "right"
	Width       int    `toml:"width"`
	ResetOnOpen bool   `toml:"reset_on_open"` // collapse everything when the panel reopens
	ShowOverlay bool   `toml:"show_overlay"`  // dim the background while open
}

// ToastConfig holds notification defaults
type ToastConfig struct {
	DurationMs int    `toml:"duration_ms"` // 0 = never auto-dismiss
	Position   string `toml:"position"`
	ShowClose  bool   `toml:"show_close"`
}

// Config holds the tuikit configuration
type Config struct {
	Theme ThemeConfig `toml:"theme"`
	Field FieldConfig `toml:"field"`
	Menu  MenuConfig  `toml:"menu"`
	Toast ToastConfig `toml:"toast"`
}

// Defaults for widget settings
const (
	DefaultFieldSize     = "md"
	DefaultCharLimit     = 156
	DefaultMenuTitle     = "Menu"
	DefaultMenuPosition  = "right"
	DefaultMenuWidth     = 32
	DefaultToastMs       = 5000
	DefaultToastPosition = "bottom-right"

	MinMenuWidth = 16
	MaxMenuWidth = 80
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Field: FieldConfig{
			Size:      DefaultFieldSize,
			CharLimit: DefaultCharLimit,
			Clearable: true,
		},
		Menu: MenuConfig{
			Title:       DefaultMenuTitle,
			Position:    DefaultMenuPosition,
			Width:       DefaultMenuWidth,
			ShowOverlay: true,
		},
		Toast: ToastConfig{
			DurationMs: DefaultToastMs,
			Position:   DefaultToastPosition,
			ShowClose:  true,
		},
	}
}

// EnvConfigPath overrides the config file location
const EnvConfigPath = "TUIKIT_CONFIG"

// Path returns the path to the config file.
// TUIKIT_CONFIG wins over ~/.config/tuikit/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tuikit", "config.toml"), nil
}

// Load reads config from Path().
// Returns Default() if file doesn't exist (no error)
// Returns Default() and an error if the file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path, with the same semantics as Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML content on top of Default() and validates it.
// Keys missing from content keep their default values.
func Parse(content string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(content, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	if cfg.Menu.Title == "" {
		cfg.Menu.Title = DefaultMenuTitle
	}
	if cfg.Field.Size == "" {
		cfg.Field.Size = DefaultFieldSize
	}
	if cfg.Menu.Position == "" {
		cfg.Menu.Position = DefaultMenuPosition
	}
	if cfg.Toast.Position == "" {
		cfg.Toast.Position = DefaultToastPosition
	}
	return cfg, nil
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns nil if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

const defaultConfig = `# tuikit configuration

# Theme - colors used by all widgets
# [theme]
# name = "default"     # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"        # auto, light, dark
# nerdfont = false     # use nerd font glyphs for icons
# primary = "#89b4fa"  # override individual colors (also: accent, success,
#                      # error, muted, normal, info, warning)

# Text field defaults
[field]
size = "md"          # sm, md, lg
char_limit = 156     # 0 = unlimited
clearable = true     # show the clear affordance when the field has content

# Navigation panel defaults
[menu]
title = "Menu"
position = "right"   # left, right
width = 32           # 16-80 columns
reset_on_open = false  # collapse all items when the panel reopens
show_overlay = true  # dim the background while the panel is open

# Notification defaults
[toast]
duration_ms = 5000   # 0 = stay until dismissed
position = "bottom-right"  # top-left, top-center, top-right,
                           # bottom-left, bottom-center, bottom-right
show_close = true
`

// DefaultConfig returns the commented default config file content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}
