package results

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/pr1ncegupta/skillpath/internal/quiz"
	"github.com/pr1ncegupta/skillpath/internal/roadmap"
	"github.com/pr1ncegupta/skillpath/internal/router"
	"github.com/pr1ncegupta/skillpath/internal/screen"
	sess "github.com/pr1ncegupta/skillpath/internal/session"
	"github.com/pr1ncegupta/skillpath/internal/ui/layout"
)

const (
	spinnerInterval = 120 * time.Millisecond
	roadmapTimeout  = 90 * time.Second
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ResultsScreen shows the score report and, for imperfect scores, the
// remediation roadmap.
type ResultsScreen struct {
	session  *sess.Session
	roadmaps *roadmap.Service
	topic    string

	// quizFactory rebuilds a quiz screen for the retake action.
	quizFactory func(topic string) screen.Screen

	report      *qz.ScoreReport
	roadmapText string
	roadmapErr  error
	loading     bool
	frame       int
	scroll      int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the session's scored report.
func New(session *sess.Session, roadmaps *roadmap.Service, topic string, quizFactory func(topic string) screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		session:     session,
		roadmaps:    roadmaps,
		topic:       topic,
		quizFactory: quizFactory,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	s.report = s.session.Report()
	if s.report == nil || s.report.Perfect() || s.roadmaps == nil {
		return nil
	}
	s.loading = true
	return tea.Batch(s.generateRoadmap(), spinnerTick())
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Retake"},
		{Key: "T", Description: "New topic"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// generateRoadmap asks the provider for a study plan covering the
// missed questions.
func (s *ResultsScreen) generateRoadmap() tea.Cmd {
	report := s.report
	topic := s.topic
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), roadmapTimeout)
		defer cancel()

		text, err := s.roadmaps.Generate(ctx, topic, qz.WeakPrompts(*report))
		return roadmapReadyMsg{Text: text, Err: err}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapReadyMsg:
		s.loading = false
		s.roadmapText = msg.Text
		s.roadmapErr = msg.Err
		return s, nil

	case spinnerTickMsg:
		if s.loading {
			s.frame++
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "r":
		// Retake the same topic with a fresh test.
		s.session.Reset()
		if s.quizFactory == nil {
			return s, nil
		}
		next := s.quizFactory(s.topic)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "t", "enter":
		s.session.Reset()
		return s, func() tea.Msg {
			return router.PopScreenMsg{}
		}
	}
	return s, nil
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
