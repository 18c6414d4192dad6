package styles

import (
	"github.com/charmbracelet/x/ansi"
)

// Symbols holds the icon set based on nerdfont configuration
type Symbols struct {
	Expanded  string // chevron for an open parent row
	Collapsed string // chevron for a closed parent row
	Close     string // close/clear affordance
	Reveal    string // password hidden, press to show
	Conceal   string // password shown, press to hide
	Success   string
	Error     string
	Warning   string
	Info      string
}

// Default symbols (unicode, no patched font needed)
var defaultSymbols = Symbols{
	Expanded:  "▾",
	Collapsed: "▸",
	Close:     "×",
	Reveal:    "◉",
	Conceal:   "◎",
	Success:   "✓",
	Error:     "✕",
	Warning:   "!",
	Info:      "i",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Expanded:  "\uf078", // nf-fa-chevron_down
	Collapsed: "\uf054", // nf-fa-chevron_right
	Close:     "\uf00d", // nf-fa-times
	Reveal:    "\uf06e", // nf-fa-eye
	Conceal:   "\uf070", // nf-fa-eye_slash
	Success:   "\uf058", // nf-fa-check_circle
	Error:     "\uf057", // nf-fa-times_circle
	Warning:   "\uf071", // nf-fa-warning
	Info:      "\uf05a", // nf-fa-info_circle
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// Hyperlink wraps already-styled text in an OSC 8 hyperlink to url.
// Returns text unchanged if url is empty.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// Truncate shortens s to width cells, appending an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
