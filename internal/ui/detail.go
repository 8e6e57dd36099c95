package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func joinHorizontal(panes ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

// renderDetail shows the selected entry's content followed by one section
// per interpreter. A declined interpreter renders an explicit "not
// applicable" marker rather than being omitted.
func (m Model) renderDetail(width int) string {
	entry, ok := m.hist.Get(m.selected)
	if !ok {
		return dimStyle.Render("Select an entry from the history.")
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Content"))
	b.WriteString(dimStyle.Render("  captured at " + entry.Stamp()))
	b.WriteString("\n")
	b.WriteString(clipLines(entry.Content, width, 6))
	b.WriteString("\n")

	for _, o := range m.outcomes {
		b.WriteString("\n")
		if o.Result == nil {
			b.WriteString(sectionStyle.Render(o.Name))
			b.WriteString(declinedStyle.Render("  (not applicable)"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(sectionStyle.Render(o.Name))
		b.WriteString("\n")
		for _, it := range o.Result.Items {
			b.WriteString(labelStyle.Render(it.Label))
			if it.Swatch != nil {
				b.WriteString(swatchCell(*it.Swatch))
				b.WriteString(" ")
			}
			b.WriteString(clipLines(it.Value, width-16, 8))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// clipLines limits a value to maxLines lines of at most width runes each.
func clipLines(s string, width, maxLines int) string {
	if width < 8 {
		width = 8
	}
	lines := strings.Split(s, "\n")
	clipped := len(lines) > maxLines
	if clipped {
		lines = lines[:maxLines]
	}
	for i, l := range lines {
		runes := []rune(l)
		if len(runes) > width {
			lines[i] = string(runes[:width-1]) + "…"
		}
		if i > 0 {
			lines[i] = strings.Repeat(" ", 14) + lines[i]
		}
	}
	out := strings.Join(lines, "\n")
	if clipped {
		out += "\n" + strings.Repeat(" ", 14) + dimStyle.Render("…")
	}
	return out
}
