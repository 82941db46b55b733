package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pr1ncegupta/skillpath/internal/quizgen"
	"github.com/pr1ncegupta/skillpath/internal/roadmap"
	"github.com/pr1ncegupta/skillpath/internal/router"
	"github.com/pr1ncegupta/skillpath/internal/screen"
	"github.com/pr1ncegupta/skillpath/internal/screens/home"
	sess "github.com/pr1ncegupta/skillpath/internal/session"
	"github.com/pr1ncegupta/skillpath/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. Generator may be nil
// when no API key is configured; the home screen explains how to fix
// that instead of crashing.
type Options struct {
	Generator      quizgen.Generator
	RoadmapService *roadmap.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *sess.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	session := sess.New()
	homeScreen := home.New(session, opts.Generator, opts.RoadmapService)
	return AppModel{
		router:  router.New(homeScreen),
		session: session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Leaving a screen abandons whatever it was doing.
				m.session.Reset()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// At the root, let the screen use Esc (e.g. cancel the
			// custom-topic input).
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.session.Topic(), m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
