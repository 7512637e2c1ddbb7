// Package render writes demo results in the formats the CLI supports.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"patterns/internal/builder"
)

// Format selects how results are written.
type Format string

const (
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatStyled Format = "styled"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatYAML, FormatStyled}

// ErrUnknownFormat is returned for formats that are not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a case-insensitive name to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, strings.Join(formatNames(), ", "))
}

func formatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return names
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	missingStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Heading writes a section heading.
func Heading(w io.Writer, f Format, text string) error {
	line := text
	switch f {
	case FormatStyled:
		line = headingStyle.Render(text)
	case FormatYAML:
		line = "# " + text
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

type namedHouse struct {
	Name          string `yaml:"name,omitempty"`
	builder.House `yaml:",inline"`
}

// House writes h under title. The text format matches House.String with the
// title on its own line, suffixed with a colon.
func House(w io.Writer, f Format, title string, h *builder.House) error {
	if h == nil {
		return errors.New("render: house is nil")
	}
	var out string
	switch f {
	case FormatText, "":
		if title != "" {
			out = title + ":\n"
		}
		out += h.String() + "\n"
	case FormatYAML:
		data, err := yaml.Marshal(namedHouse{Name: title, House: *h})
		if err != nil {
			return fmt.Errorf("encoding house: %w", err)
		}
		out = "---\n" + string(data)
	case FormatStyled:
		out = styledHouse(title, h) + "\n"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	_, err := io.WriteString(w, out)
	return err
}

func styledHouse(title string, h *builder.House) string {
	rows := [][2]string{
		{"basement", h.Basement},
		{"structure", h.Structure},
		{"roof", h.Roof},
		{"interior", h.Interior},
	}
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(headingStyle.Render(title))
		b.WriteString("\n")
	}
	for i, r := range rows {
		value := r[1]
		if value == "" {
			value = missingStyle.Render("not built")
		}
		b.WriteString(labelStyle.Render(runewidth.FillRight(r[0], width)))
		b.WriteString("  ")
		b.WriteString(value)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return boxStyle.Render(b.String())
}
