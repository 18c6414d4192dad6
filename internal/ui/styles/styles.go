// Package styles provides shared lipgloss styles for the widgets.
//
// This package centralizes color definitions and styling so the field,
// navigation panel and notice render with one palette. Colors are package
// variables updated by [Init]; style helpers are functions so they pick up
// theme changes.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette colors, replaced by Init.
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for success notices (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error notices and invalid fields (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for disabled/inactive text (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")

	// Info is used for info notices and helper text (gray)
	Info color.Color = lipgloss.Color("244")

	// Warning is used for warning notices (orange)
	Warning color.Color = lipgloss.Color("214")
)

// TitleStyle for panel titles and field labels
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)
}

// LabelStyle for field labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Normal)
}

// RequiredStyle for the required marker after a label
func RequiredStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Error)
}

// InputStyle frames the text input. Invalid fields get the error color,
// focused ones the accent, disabled ones are dimmed.
func InputStyle(focused, invalid, disabled bool) lipgloss.Style {
	border := Muted
	switch {
	case invalid:
		border = Error
	case focused && !disabled:
		border = Accent
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(1).
		PaddingRight(1)
	if disabled {
		s = s.Faint(true)
	}
	return s
}

// AffordanceStyle for trailing field controls (clear, reveal)
func AffordanceStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted)
}

// HelperStyle for helper text below a field
func HelperStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Info)
}

// ErrorStyle for validation error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Error)
}

// PanelStyle wraps the navigation panel
func PanelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Primary).
		PaddingLeft(1).
		PaddingRight(1)
}

// RowStyle for menu rows
func RowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Normal)
}

// RowActiveStyle for the row under the cursor
func RowActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)
}

// RowDisabledStyle for disabled rows
func RowDisabledStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Faint(true)
}

// MutedStyle for hints and secondary text
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted)
}

// HighlightStyle for highlighting fuzzy matched characters
func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		Underline(true)
}

// BackdropStyle dims content behind an open overlay
func BackdropStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Faint(true)
}

// NoticeStyle frames a notice in the given variant color.
// Exiting notices render faint.
func NoticeStyle(c color.Color, exiting bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Foreground(Normal).
		PaddingLeft(1).
		PaddingRight(1)
	if exiting {
		s = s.Faint(true).BorderForeground(Muted)
	}
	return s
}

// IconStyle colors a notice icon
func IconStyle(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(c).
		Bold(true)
}
