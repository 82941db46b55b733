package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pr1ncegupta/skillpath/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Choice is a multiple-choice selector for one screening question.
// It never reveals the correct answer; grading happens after the whole
// test is submitted.
type Choice struct {
	Prompt  string
	Options []string
	Cursor  int
	Chosen  int // index of the recorded answer, -1 if none yet
}

// NewChoice creates a selector for the given prompt and options.
func NewChoice(prompt string, options []string) Choice {
	return Choice{
		Prompt:  prompt,
		Options: options,
		Cursor:  0,
		Chosen:  -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		c.Chosen = c.Cursor
	}

	return c, nil
}

// View renders the prompt and its options. A recorded answer is marked
// with a filled dot so the learner can change it before submitting.
func (c Choice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		label := "?"
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		mark := "○"
		if i == c.Chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		switch {
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == c.Chosen:
			s += theme.Answered.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Value returns the text of the recorded answer, or "" if none.
func (c Choice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// Answered reports whether an option has been recorded.
func (c Choice) Answered() bool {
	return c.Chosen >= 0
}
