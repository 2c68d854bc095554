// ABOUTME: Entry point for the viewer: raw mode, program wiring, and the final reprint.
// ABOUTME: The captured table is written to stdout after exit so it survives scrollback.

package debug

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Run starts the raw key-event viewer and blocks until it quits. The tty
// is put into raw mode by hand so every wire unit, quit chords included,
// reaches the model unparsed.
func Run(opts Options) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithInput(newNeverReader()),
		tea.WithOutput(os.Stderr),
	)

	go readLoop(p, os.Stdin, DefaultEscTimeout)

	final, err := p.Run()
	if restoreErr := term.Restore(fd, oldState); restoreErr != nil && err == nil {
		err = fmt.Errorf("restoring terminal: %w", restoreErr)
	}
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil
	}
	if m.Err() != nil {
		return fmt.Errorf("reading input: %w", m.Err())
	}
	if len(m.rows) > 0 {
		fmt.Fprint(os.Stdout, m.Table())
	}
	return nil
}
