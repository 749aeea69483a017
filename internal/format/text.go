package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/alfred-hue/internal/colors"
	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/query"
)

const checkmark = "✓"

// TextFormatter renders results as an indented terminal listing. Valid
// items are marked with a checkmark.
type TextFormatter struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	detail   lipgloss.Style
	mark     lipgloss.Style
}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		title:    lipgloss.NewStyle().Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan))),
		mark:     lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green))),
	}
}

// FormatItems implements Formatter.
func (f *TextFormatter) FormatItems(items []query.Item, w io.Writer) error {
	var b strings.Builder
	for _, it := range items {
		mark := " "
		if it.Valid {
			mark = f.mark.Render(checkmark)
		}
		fmt.Fprintf(&b, "%s %s\n", mark, f.title.Render(it.Title))
		if it.Subtitle != "" {
			fmt.Fprintf(&b, "    %s\n", f.subtitle.Render(it.Subtitle))
		}
		switch {
		case it.Arg != "":
			fmt.Fprintf(&b, "    %s\n", f.detail.Render("arg: "+it.Arg))
		case it.Autocomplete != "":
			fmt.Fprintf(&b, "    %s\n", f.detail.Render("next: "+it.Autocomplete))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatLights renders a light snapshot as a table.
func FormatLights(lights domain.Lights, w io.Writer) error {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))

	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf("%-4s  %-24s  %-5s  %5s  %4s  %s", "ID", "NAME", "STATE", "HUE", "BRI", "EFFECT")))
	b.WriteString("\n")
	for _, l := range lights {
		state := "off"
		if l.State.On {
			state = "on"
		}
		if !l.State.Reachable {
			state += "?"
		}
		effect := l.State.Effect
		if effect == "" {
			effect = "none"
		}
		fmt.Fprintf(&b, "%-4s  %-24s  %-5s  %4.0f°  %3.0f%%  %s\n",
			l.ID, truncate(l.Name, 24), state,
			l.State.HueDegrees(), l.State.BrightnessPercent(), effect)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
