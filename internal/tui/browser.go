// Package tui is an interactive browser for the pattern demonstrations.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"patterns/internal/demo"
	"patterns/pkg/logging"
)

// For mocking in tests
var copyToClipboard = clipboard.WriteAll

type mode int

const (
	modeList mode = iota
	modeOutput
)

const footerHeight = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type demoItem struct {
	demo demo.Demo
}

func (i demoItem) Title() string       { return i.demo.Title }
func (i demoItem) Description() string { return i.demo.Description }
func (i demoItem) FilterValue() string { return i.demo.Name }

// logMsg carries one entry from the TUI log channel.
type logMsg struct {
	entry logging.LogEntry
}

// Model is the demo browser. It lists the demos and shows the output of
// the one last run.
type Model struct {
	list     list.Model
	viewport viewport.Model
	mode     mode
	opts     demo.Options
	logs     <-chan logging.LogEntry

	current demo.Demo
	output  string
	status  string
	failed  bool
	lastLog string
	width   int
	height  int
}

// New creates a browser running demos with opts. logs may be nil.
func New(opts demo.Options, logs <-chan logging.LogEntry) Model {
	demos := demo.All()
	items := make([]list.Item, 0, len(demos))
	for _, d := range demos {
		items = append(items, demoItem{demo: d})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Design patterns"
	l.SetShowHelp(false)

	return Model{
		list:     l,
		viewport: viewport.New(0, 0),
		opts:     opts,
		logs:     logs,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForLog(m.logs)
}

func waitForLog(logs <-chan logging.LogEntry) tea.Cmd {
	if logs == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-logs
		if !ok {
			return nil
		}
		return logMsg{entry: entry}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-footerHeight, 0))
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerHeight-1, 0)
		return m, nil

	case logMsg:
		m.lastLog = fmt.Sprintf("[%s] %s: %s", msg.entry.Level, msg.entry.Subsystem, msg.entry.Message)
		if msg.entry.Err != nil {
			m.lastLog += ": " + msg.entry.Err.Error()
		}
		return m, waitForLog(m.logs)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeOutput {
			return m.updateOutput(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		item, ok := m.list.SelectedItem().(demoItem)
		if !ok {
			return m, nil
		}
		m.run(item.demo)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateOutput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.mode = modeList
		m.status = ""
		return m, nil
	case "r":
		m.run(m.current)
		return m, nil
	case "y":
		if err := copyToClipboard(m.output); err != nil {
			logging.Error("tui", err, "Failed to copy %s output", m.current.Name)
			m.status, m.failed = "Copy failed: "+err.Error(), true
			return m, nil
		}
		m.status, m.failed = "Output copied to clipboard", false
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Open runs d and shows its output, as if it had been picked from the list.
func (m Model) Open(d demo.Demo) Model {
	for i, item := range m.list.Items() {
		if it, ok := item.(demoItem); ok && it.demo.Name == d.Name {
			m.list.Select(i)
		}
	}
	m.run(d)
	return m
}

// run executes d and switches to the output view.
func (m *Model) run(d demo.Demo) {
	var buf bytes.Buffer
	err := d.Run(&buf, m.opts)

	m.current = d
	m.mode = modeOutput
	m.output = buf.String()
	m.status, m.failed = "", false
	if err != nil {
		logging.Error("tui", err, "Demo %s failed", d.Name)
		m.status, m.failed = "Demo failed: "+err.Error(), true
	}
	m.viewport.SetContent(m.output)
	m.viewport.GotoTop()
}

func (m Model) View() string {
	var b strings.Builder
	switch m.mode {
	case modeOutput:
		b.WriteString(titleStyle.Render(m.current.Title))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(m.footer("esc back • r rerun • y copy • q quit"))
	default:
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(m.footer("enter run • / filter • q quit"))
	}
	return b.String()
}

func (m Model) footer(help string) string {
	line := helpStyle.Render(help)
	switch {
	case m.status != "" && m.failed:
		line += "  " + errorStyle.Render(m.status)
	case m.status != "":
		line += "  " + statusStyle.Render(m.status)
	case m.lastLog != "":
		line += "  " + helpStyle.Render(m.lastLog)
	}
	return line
}
