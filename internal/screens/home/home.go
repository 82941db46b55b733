package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pr1ncegupta/skillpath/internal/quizgen"
	"github.com/pr1ncegupta/skillpath/internal/roadmap"
	"github.com/pr1ncegupta/skillpath/internal/router"
	"github.com/pr1ncegupta/skillpath/internal/screen"
	quizscreen "github.com/pr1ncegupta/skillpath/internal/screens/quiz"
	sess "github.com/pr1ncegupta/skillpath/internal/session"
	"github.com/pr1ncegupta/skillpath/internal/topics"
	"github.com/pr1ncegupta/skillpath/internal/ui/components"
	"github.com/pr1ncegupta/skillpath/internal/ui/layout"
	"github.com/pr1ncegupta/skillpath/internal/ui/theme"
)

const maxTopicLen = 60

// HomeScreen is the topic-selection screen shown on launch.
type HomeScreen struct {
	session   *sess.Session
	generator quizgen.Generator
	roadmaps  *roadmap.Service

	menu     components.Menu
	input    components.TextInput
	entering bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(session *sess.Session, generator quizgen.Generator, roadmaps *roadmap.Service) *HomeScreen {
	h := &HomeScreen{
		session:   session,
		generator: generator,
		roadmaps:  roadmaps,
		input:     components.NewTextInput("e.g. SQL joins, Go concurrency...", maxTopicLen),
	}

	items := make([]components.MenuItem, 0, len(topics.Catalog)+2)
	for _, t := range topics.Catalog {
		topic := t.Name
		items = append(items, components.MenuItem{
			Label:       t.Name,
			Description: t.Description,
			Action: func() tea.Cmd {
				return h.startTopic(topic)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:       "Custom topic",
		Description: "Type your own subject",
		Action: func() tea.Cmd {
			h.entering = true
			return h.input.Init()
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

// startTopic activates a topic and moves to the quiz screen.
func (h *HomeScreen) startTopic(topic string) tea.Cmd {
	if h.generator == nil {
		h.errMsg = "No LLM provider configured. Set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY."
		return nil
	}
	h.errMsg = ""
	next := quizscreen.New(h.session, h.generator, h.roadmaps, topic)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose a Topic"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start test"},
			{Key: "Esc", Description: "Cancel"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.entering {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc":
				h.entering = false
				return h, nil
			case "enter":
				topic := h.input.Value()
				if topic == "" {
					return h, nil
				}
				h.entering = false
				return h, h.startTopic(topic)
			}
		}
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("What do you want to be tested on?")
	subtitle := theme.Subtitle.Width(width).Render("A 5-question screening test pinpoints your gaps.")
	sections = append(sections, "", title, subtitle, "")

	if h.entering {
		prompt := theme.Body.Render("  Topic: ") + h.input.View()
		sections = append(sections, prompt)
	} else {
		sections = append(sections, h.menu.View())
	}

	if h.errMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(width).
			Align(lipgloss.Center).
			Render(h.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
