package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/pr1ncegupta/skillpath/internal/session"
	"github.com/pr1ncegupta/skillpath/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}

	switch s.session.Phase() {
	case sess.PhaseGenerating:
		return s.renderGenerating(width, height)
	case sess.PhaseReady:
		return s.renderQuestion(width, height)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing...")
}

func (s *QuizScreen) renderGenerating(width, height int) string {
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	msg := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) +
		lipgloss.NewStyle().Foreground(theme.Text).Render("  Writing your screening test on ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.topic) +
		lipgloss.NewStyle().Foreground(theme.Text).Render("...")

	hint := theme.Hint.Render("this usually takes a few seconds")

	content := msg + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	set := s.session.Quiz()
	if len(s.choices) == 0 || s.current >= len(s.choices) {
		return ""
	}

	var b strings.Builder

	// Progress line: which question, and which are answered.
	marks := make([]string, len(s.choices))
	for i, c := range s.choices {
		mark := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if c.Answered() {
			mark = "●"
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == s.current {
			style = style.Bold(true).Foreground(theme.Primary)
		}
		marks[i] = style.Render(mark)
	}

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d   ", s.current+1, len(set))) +
		strings.Join(marks, " ")

	b.WriteString(progress)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(s.choices[s.current].View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderError renders a generation or submission failure.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press Esc to pick another topic.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
