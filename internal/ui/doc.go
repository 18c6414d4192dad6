// Package ui groups the tuikit terminal widgets.
//
// Each widget is split into a state engine with no rendering and a
// Bubbletea model that renders it and maps keys onto engine operations:
//
//   - [field]: a labelled text field with controlled and uncontrolled
//     values, a clear affordance and password reveal
//   - [navtree]: a collapsible navigation panel that holds an overlay
//     lease while open, with fuzzy search over labels
//   - [notice]: transient notifications that auto-dismiss after a
//     duration and fade out before removal
//
// Supporting packages:
//
//   - [timer]: cancellable one-shot timers, driven by Bubbletea ticks in
//     programs and by a virtual clock in tests
//   - [overlay]: the ordered stack of exclusive overlay leases
//   - [styles]: theme presets, lipgloss styles and glyphs
//   - [apps]: the programs behind the CLI commands
//
// [field]: github.com/raphi011/tuikit/internal/ui/field
// [navtree]: github.com/raphi011/tuikit/internal/ui/navtree
// [notice]: github.com/raphi011/tuikit/internal/ui/notice
// [timer]: github.com/raphi011/tuikit/internal/ui/timer
// [overlay]: github.com/raphi011/tuikit/internal/ui/overlay
// [styles]: github.com/raphi011/tuikit/internal/ui/styles
// [apps]: github.com/raphi011/tuikit/internal/ui/apps
package ui
