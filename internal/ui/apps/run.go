// Package apps contains the Bubbletea programs behind the tuikit commands.
//
// Each app hosts one or more widgets the way an application would: it owns
// controlled values, maps its own keys to widget operations, and reports a
// result once the program exits. Programs render to stderr so stdout stays
// free for results (e.g. value=$(tuikit field)).
package apps

import (
	"errors"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// ErrNoTTY is returned when an interactive app is started without a
// terminal on stdin.
var ErrNoTTY = errors.New("interactive mode requires a terminal")

// ErrCancelled is returned when the user quits without a result.
var ErrCancelled = errors.New("cancelled")

// RequireTTY fails unless stdin is a terminal.
func RequireTTY() error {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return ErrNoTTY
}

// run executes model on stderr and returns the final model.
func run(model tea.Model) (tea.Model, error) {
	if err := RequireTTY(); err != nil {
		return nil, err
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	return p.Run()
}
