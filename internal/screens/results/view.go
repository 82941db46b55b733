package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pr1ncegupta/skillpath/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	if s.report == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n\n  No scored test to show. Press Esc to go back.")
	}

	var b strings.Builder

	b.WriteString(s.renderScoreLine(width))
	b.WriteString("\n\n")

	for i, v := range s.report.Verdicts {
		b.WriteString(renderVerdict(i+1, v.Prompt, v.Submitted, v.Answer, v.Correct, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderRoadmap(width))

	return s.clipToHeight(b.String(), height)
}

func (s *ResultsScreen) renderScoreLine(width int) string {
	var headline string
	if s.report.Perfect() {
		headline = lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("  Perfect score! %d/%d on %s — no gaps found.",
				s.report.Correct, s.report.Total, s.topic))
	} else {
		headline = lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("  You scored %d/%d on %s.",
				s.report.Correct, s.report.Total, s.topic))
	}
	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", maxInt(width-4, 0)))
	return headline + "\n" + rule
}

func renderVerdict(n int, prompt, submitted, answer string, correct bool, width int) string {
	var b strings.Builder
	if correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("  ✓ Q%d. ", n)))
		b.WriteString(theme.Body.Render(prompt))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  ✗ Q%d. ", n)))
		b.WriteString(theme.Body.Render(prompt))
		b.WriteString("\n")
		got := submitted
		if got == "" {
			got = "(no answer)"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("       your answer: " + got))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("       correct:     " + answer))
	}
	return b.String()
}

func (s *ResultsScreen) renderRoadmap(width int) string {
	if s.report.Perfect() {
		return theme.Hint.Render("  Press T for another topic, or R if you want a rematch.")
	}

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Your roadmap")
	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", maxInt(width-4, 0)))

	var body string
	switch {
	case s.loading:
		frame := spinnerFrames[s.frame%len(spinnerFrames)]
		body = lipgloss.NewStyle().Foreground(theme.Primary).Render("  "+frame) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Building a study plan for your gaps...")
	case s.roadmapErr != nil:
		body = lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  Roadmap unavailable: " + s.roadmapErr.Error())
	default:
		body = indent(s.roadmapText, "  ")
	}

	return header + "\n" + rule + "\n" + body
}

// clipToHeight applies the scroll offset and trims the content to the
// visible area.
func (s *ResultsScreen) clipToHeight(content string, height int) string {
	lines := strings.Split(content, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scroll:end], "\n")
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
