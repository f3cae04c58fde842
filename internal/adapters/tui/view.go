package tui

import (
	"fmt"
	"strings"
)

//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("BYTESUM"))
	if m.Root != "" {
		s.WriteString(rootStyle.Render(m.Root))
	}
	s.WriteString("\n\n")

	s.WriteString(m.progress.ViewAs(m.Percent()))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%d/%d files", m.Processed, m.Total))
	if m.Failed > 0 {
		s.WriteString(failStyle.Render(fmt.Sprintf(", %d failed", m.Failed)))
	}
	s.WriteString("\n\n")

	for _, line := range m.Recent {
		if line.Failed {
			s.WriteString(failStyle.Render("✗ " + line.Text))
		} else {
			s.WriteString(okStyle.Render("✓ " + line.Text))
		}
		s.WriteString("\n")
	}
	s.WriteString("\n")

	switch {
	case m.Done && m.Err != nil:
		s.WriteString(failStyle.Render("Scan failed: " + m.Err.Error()))
	case m.Done && m.Canceled:
		s.WriteString(statusStyle.Render("Canceled"))
	case m.Done:
		s.WriteString(statusStyle.Render("Done"))
	case m.Canceled:
		s.WriteString(statusStyle.Render("Canceling..."))
	default:
		s.WriteString(helpStyle.Render("c cancel • q quit"))
	}
	s.WriteString("\n")

	return s.String()
}
