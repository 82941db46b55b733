package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/pr1ncegupta/skillpath/internal/quizgen"
	"github.com/pr1ncegupta/skillpath/internal/roadmap"
	"github.com/pr1ncegupta/skillpath/internal/router"
	"github.com/pr1ncegupta/skillpath/internal/screen"
	"github.com/pr1ncegupta/skillpath/internal/screens/results"
	sess "github.com/pr1ncegupta/skillpath/internal/session"
	"github.com/pr1ncegupta/skillpath/internal/ui/components"
	"github.com/pr1ncegupta/skillpath/internal/ui/layout"
)

const (
	spinnerInterval = 120 * time.Millisecond
	generateTimeout = 90 * time.Second
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen runs one screening test: generation, answering, submission.
type QuizScreen struct {
	session   *sess.Session
	generator quizgen.Generator
	roadmaps  *roadmap.Service
	topic     string

	choices []components.Choice
	current int
	frame   int
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given topic.
func New(session *sess.Session, generator quizgen.Generator, roadmaps *roadmap.Service, topic string) *QuizScreen {
	return &QuizScreen{
		session:   session,
		generator: generator,
		roadmaps:  roadmaps,
		topic:     topic,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	seq, started := s.session.SelectTopic(s.topic)
	if !started {
		// Same topic, test already on screen or scored. Reuse it.
		switch s.session.Phase() {
		case sess.PhaseScored:
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: results.New(s.session, s.roadmaps, s.topic, s.factory())}
			}
		case sess.PhaseReady:
			s.buildChoices()
			return nil
		}
		return nil
	}
	return tea.Batch(s.generateTest(seq), spinnerTick())
}

// factory lets the results screen rebuild a fresh quiz screen for a retake.
func (s *QuizScreen) factory() func(topic string) screen.Screen {
	return func(topic string) screen.Screen {
		return New(s.session, s.generator, s.roadmaps, topic)
	}
}

func (s *QuizScreen) Title() string {
	return "Screening Test"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if s.session.Phase() == sess.PhaseGenerating {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choice"},
		{Key: "←→", Description: "Question"},
		{Key: "Enter", Description: "Answer"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case testReadyMsg:
		return s.handleTestReady(msg)

	case spinnerTickMsg:
		if s.session.Phase() == sess.PhaseGenerating {
			s.frame++
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// generateTest asks the provider for a fresh screening test.
func (s *QuizScreen) generateTest(seq uint64) tea.Cmd {
	topic := s.topic
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		set, err := s.generator.Generate(ctx, topic)
		return testReadyMsg{Seq: seq, Set: set, Err: err}
	}
}

func (s *QuizScreen) handleTestReady(msg testReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if s.session.FailGeneration(msg.Seq) {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}
	if !s.session.CompleteGeneration(msg.Seq, msg.Set) {
		// Stale completion from an abandoned topic activation.
		return s, nil
	}
	s.buildChoices()
	return s, nil
}

// buildChoices creates one selector per question, restoring any answers
// already recorded in the session.
func (s *QuizScreen) buildChoices() {
	set := s.session.Quiz()
	s.choices = make([]components.Choice, len(set))
	for i, q := range set {
		c := components.NewChoice(q.Prompt, q.Choices)
		if prev := s.session.Answer(q.ID); prev != "" {
			for j, opt := range q.Choices {
				if opt == prev {
					c.Chosen = j
					c.Cursor = j
					break
				}
			}
		}
		s.choices[i] = c
	}
	s.current = 0
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session.Phase() != sess.PhaseReady || len(s.choices) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if s.current > 0 {
			s.current--
		}
		return s, nil
	case "right", "l", "tab":
		if s.current < len(s.choices)-1 {
			s.current++
		}
		return s, nil
	case "s":
		return s.submit()
	case "enter":
		var cmd tea.Cmd
		s.choices[s.current], cmd = s.choices[s.current].Update(msg)
		s.recordAnswer(s.current)
		if s.allAnswered() {
			return s.submit()
		}
		s.advanceToUnanswered()
		return s, cmd
	}

	var cmd tea.Cmd
	s.choices[s.current], cmd = s.choices[s.current].Update(msg)
	return s, cmd
}

func (s *QuizScreen) recordAnswer(i int) {
	set := s.session.Quiz()
	if i < 0 || i >= len(set) {
		return
	}
	if v := s.choices[i].Value(); v != "" {
		_ = s.session.SetAnswer(set[i].ID, v)
	}
}

func (s *QuizScreen) allAnswered() bool {
	for _, c := range s.choices {
		if !c.Answered() {
			return false
		}
	}
	return true
}

// advanceToUnanswered moves the cursor to the next question without a
// recorded answer, scanning forward then wrapping.
func (s *QuizScreen) advanceToUnanswered() {
	n := len(s.choices)
	for off := 1; off <= n; off++ {
		i := (s.current + off) % n
		if !s.choices[i].Answered() {
			s.current = i
			return
		}
	}
	if s.current < n-1 {
		s.current++
	}
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	if _, err := s.session.Submit(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(s.session, s.roadmaps, s.topic, s.factory())}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
