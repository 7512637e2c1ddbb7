package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"patterns/internal/demo"
	"patterns/pkg/logging"
)

// Run starts the browser on the alternate screen and blocks until the user
// quits. Logging is redirected to the browser footer while it runs. When
// start is not nil the browser opens on that demo's output.
func Run(opts demo.Options, level logging.LogLevel, start *demo.Demo) error {
	logs := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	m := New(opts, logs)
	if start != nil {
		m = m.Open(*start)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
