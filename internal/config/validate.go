package config

import (
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames     = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes     = []string{"auto", "light", "dark"}
	ValidFieldSizes     = []string{"sm", "md", "lg"}
	ValidMenuPositions  = []string{"left", "right"}
	ValidToastPositions = []string{"top-left", "top-center", "top-right", "bottom-left", "bottom-center", "bottom-right"}
)

// Validate checks every enum and range in the config.
func (c *Config) Validate() error {
	if c.Theme.Name != "" && !isValidThemeName(c.Theme.Name) {
		return fmt.Errorf("invalid theme.name %q: must be %s", c.Theme.Name, formatOptions(ValidThemeNames))
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	if err := validateEnum(c.Field.Size, "field.size", ValidFieldSizes); err != nil {
		return err
	}
	if c.Field.CharLimit < 0 {
		return fmt.Errorf("invalid field.char_limit %d: must not be negative", c.Field.CharLimit)
	}
	if err := validateEnum(c.Menu.Position, "menu.position", ValidMenuPositions); err != nil {
		return err
	}
	if c.Menu.Width < MinMenuWidth || c.Menu.Width > MaxMenuWidth {
		return fmt.Errorf("invalid menu.width %d: must be between %d and %d", c.Menu.Width, MinMenuWidth, MaxMenuWidth)
	}
	if c.Toast.DurationMs < 0 {
		return fmt.Errorf("invalid toast.duration_ms %d: must not be negative", c.Toast.DurationMs)
	}
	return validateEnum(c.Toast.Position, "toast.position", ValidToastPositions)
}

// ValidateToastPosition validates a position value against ValidToastPositions.
// Exported for use in CLI flag validation.
func ValidateToastPosition(pos string) error {
	return validateEnum(pos, "position", ValidToastPositions)
}

// ValidateFieldSize validates a size value against ValidFieldSizes.
// Exported for use in CLI flag validation.
func ValidateFieldSize(size string) error {
	return validateEnum(size, "size", ValidFieldSizes)
}

// ValidateMenuPosition validates a side value against ValidMenuPositions.
func ValidateMenuPosition(pos string) error {
	return validateEnum(pos, "position", ValidMenuPositions)
}

func isValidThemeName(name string) bool {
	return slices.Contains(ValidThemeNames, name)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
