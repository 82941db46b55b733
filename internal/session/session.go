package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pr1ncegupta/skillpath/internal/quiz"
)

// Session holds the state of one interactive screening session: the
// active topic, the generated quiz, the learner's answers, and the last
// score report.
//
// A session belongs to exactly one interactive user context, but UI
// events and generation completions can arrive on different goroutines,
// so every mutation goes through the mutex. Transitions are not
// commutative: a topic-change reset racing a stale in-flight generation
// must not resurrect old state, which the generation sequence number
// enforces — completions carrying a stale sequence are dropped.
type Session struct {
	mu sync.Mutex

	id      string
	topic   string
	phase   Phase
	quizSet quiz.QuizSet
	answers quiz.AnswerRecord
	report  *quiz.ScoreReport

	// gen increments on every transition that invalidates an in-flight
	// generation request (topic change, reset).
	gen uint64
}

// New creates an idle session with no topic selected.
func New() *Session {
	return &Session{
		id:    uuid.New().String(),
		phase: PhaseIdle,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Topic returns the active topic, or "" when none is selected.
func (s *Session) Topic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic
}

// Quiz returns the current quiz set (nil unless Ready or Scored).
func (s *Session) Quiz() quiz.QuizSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quizSet
}

// Answer returns the recorded choice for a question ID ("" if unanswered).
func (s *Session) Answer(questionID int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers[questionID]
}

// Answers returns a copy of the current answer record.
func (s *Session) Answers() quiz.AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(quiz.AnswerRecord, len(s.answers))
	for id, choice := range s.answers {
		out[id] = choice
	}
	return out
}

// Report returns the last score report, or nil before any submission.
func (s *Session) Report() *quiz.ScoreReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// SelectTopic activates a topic and moves the session to Generating.
//
// Choosing the topic that is already active while a quiz is on screen is
// a no-op: answers and results survive form re-submission. Any other
// selection clears quiz, answers, and report before the generation
// request is issued, and returns the sequence number the caller must
// hand back to CompleteGeneration / FailGeneration.
func (s *Session) SelectTopic(topic string) (seq uint64, started bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if topic == s.topic && (s.phase == PhaseReady || s.phase == PhaseScored) {
		return 0, false
	}

	s.clearLocked()
	s.topic = topic
	s.phase = PhaseGenerating
	s.gen++
	return s.gen, true
}

// CompleteGeneration installs a parsed quiz for the generation request
// identified by seq and moves the session to Ready. Stale completions
// (superseded by a topic change or reset) are dropped.
func (s *Session) CompleteGeneration(seq uint64, set quiz.QuizSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.gen || s.phase != PhaseGenerating {
		return false
	}

	s.quizSet = set
	s.answers = make(quiz.AnswerRecord, len(set))
	s.phase = PhaseReady
	return true
}

// FailGeneration records a failed generation attempt. The topic is
// cleared so the next render re-offers selection instead of silently
// retrying. Stale failures are dropped.
func (s *Session) FailGeneration(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.gen || s.phase != PhaseGenerating {
		return false
	}

	s.clearLocked()
	return true
}

// SetAnswer records the learner's choice for one question. Only legal
// while Ready; answers are not validated until submission.
func (s *Session) SetAnswer(questionID int, choice string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady {
		return fmt.Errorf("cannot answer in %s phase", s.phase)
	}
	s.answers[questionID] = choice
	return nil
}

// Submit scores the current answers and moves the session to Scored.
func (s *Session) Submit() (quiz.ScoreReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady {
		return quiz.ScoreReport{}, fmt.Errorf("cannot submit in %s phase", s.phase)
	}

	report := quiz.Score(s.quizSet, s.answers)
	s.report = &report
	s.phase = PhaseScored
	return report, nil
}

// Reset returns the session to Idle, clearing all fields including the
// active topic. Any in-flight generation becomes stale.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.gen++
}

// clearLocked wipes topic-scoped state. Caller holds the mutex.
func (s *Session) clearLocked() {
	s.topic = ""
	s.quizSet = nil
	s.answers = nil
	s.report = nil
	s.phase = PhaseIdle
}
