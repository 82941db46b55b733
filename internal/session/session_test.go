package session

import (
	"testing"

	"github.com/pr1ncegupta/skillpath/internal/quiz"
)

func testQuiz() quiz.QuizSet {
	return quiz.QuizSet{
		{ID: 1, Prompt: "Pick B", Choices: []string{"A", "B", "C", "D"}, Answer: "B"},
		{ID: 2, Prompt: "Pick G", Choices: []string{"E", "F", "G", "H"}, Answer: "G"},
	}
}

func readySession(t *testing.T, topic string) *Session {
	t.Helper()
	s := New()
	seq, started := s.SelectTopic(topic)
	if !started {
		t.Fatal("expected SelectTopic to start generation")
	}
	if !s.CompleteGeneration(seq, testQuiz()) {
		t.Fatal("expected CompleteGeneration to be accepted")
	}
	return s
}

func TestSelectTopic_StartsGenerating(t *testing.T) {
	s := New()
	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle", s.Phase())
	}

	_, started := s.SelectTopic("Python Basics")
	if !started {
		t.Fatal("expected generation to start")
	}
	if s.Phase() != PhaseGenerating {
		t.Errorf("phase = %s, want generating", s.Phase())
	}
	if s.Topic() != "Python Basics" {
		t.Errorf("topic = %q, want Python Basics", s.Topic())
	}
}

func TestCompleteGeneration_MovesToReady(t *testing.T) {
	s := readySession(t, "Python Basics")
	if s.Phase() != PhaseReady {
		t.Errorf("phase = %s, want ready", s.Phase())
	}
	if len(s.Quiz()) != 2 {
		t.Errorf("quiz len = %d, want 2", len(s.Quiz()))
	}
}

func TestFailGeneration_ClearsTopic(t *testing.T) {
	s := New()
	seq, _ := s.SelectTopic("Python Basics")

	if !s.FailGeneration(seq) {
		t.Fatal("expected failure to be accepted")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", s.Phase())
	}
	if s.Topic() != "" {
		t.Errorf("topic = %q, want cleared so selection is re-offered", s.Topic())
	}
}

func TestTopicChange_ClearsEverythingFirst(t *testing.T) {
	s := readySession(t, "Python Basics")
	if err := s.SetAnswer(1, "B"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	_, started := s.SelectTopic("Data Structures")
	if !started {
		t.Fatal("expected topic change to start generation")
	}
	if s.Phase() != PhaseGenerating {
		t.Errorf("phase = %s, want generating", s.Phase())
	}
	if s.Quiz() != nil {
		t.Error("quiz should be cleared before the new generation request")
	}
	if len(s.Answers()) != 0 {
		t.Error("answers should be cleared before the new generation request")
	}
	if s.Report() != nil {
		t.Error("report should be cleared before the new generation request")
	}
}

func TestSelectSameTopic_WhileReadyIsNoop(t *testing.T) {
	s := readySession(t, "Python Basics")
	if err := s.SetAnswer(1, "B"); err != nil {
		t.Fatal(err)
	}

	_, started := s.SelectTopic("Python Basics")
	if started {
		t.Fatal("re-selecting the active topic should not regenerate")
	}
	if s.Answer(1) != "B" {
		t.Error("answers should survive re-selection of the active topic")
	}
}

func TestStaleGeneration_DroppedAfterTopicChange(t *testing.T) {
	s := New()
	staleSeq, _ := s.SelectTopic("Python Basics")

	// Learner switches topics while the first request is in flight.
	freshSeq, _ := s.SelectTopic("Data Structures")

	if s.CompleteGeneration(staleSeq, testQuiz()) {
		t.Fatal("stale completion must not resurrect old state")
	}
	if s.Phase() != PhaseGenerating {
		t.Errorf("phase = %s, want still generating for the new topic", s.Phase())
	}
	if !s.CompleteGeneration(freshSeq, testQuiz()) {
		t.Fatal("fresh completion should be accepted")
	}
	if s.Topic() != "Data Structures" {
		t.Errorf("topic = %q, want Data Structures", s.Topic())
	}
}

func TestStaleGeneration_DroppedAfterReset(t *testing.T) {
	s := New()
	seq, _ := s.SelectTopic("Python Basics")
	s.Reset()

	if s.CompleteGeneration(seq, testQuiz()) {
		t.Fatal("completion after reset must be dropped")
	}
	if s.FailGeneration(seq) {
		t.Fatal("failure after reset must be dropped")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", s.Phase())
	}
}

func TestSetAnswer_OnlyWhileReady(t *testing.T) {
	s := New()
	if err := s.SetAnswer(1, "B"); err == nil {
		t.Error("expected error answering in idle phase")
	}

	s = readySession(t, "Python Basics")
	if err := s.SetAnswer(1, "B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Answer(1) != "B" {
		t.Errorf("answer = %q, want B", s.Answer(1))
	}

	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAnswer(2, "G"); err == nil {
		t.Error("expected error answering in scored phase")
	}
}

func TestSubmit_ScoresAndMovesToScored(t *testing.T) {
	s := readySession(t, "Python Basics")
	if err := s.SetAnswer(1, "B"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAnswer(2, "F"); err != nil {
		t.Fatal(err)
	}

	report, err := s.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Correct != 1 || report.Total != 2 {
		t.Errorf("aggregate = %d/%d, want 1/2", report.Correct, report.Total)
	}
	if s.Phase() != PhaseScored {
		t.Errorf("phase = %s, want scored", s.Phase())
	}
	if s.Report() == nil {
		t.Error("report should be stored on the session")
	}
}

func TestSubmit_OutsideReadyFails(t *testing.T) {
	s := New()
	if _, err := s.Submit(); err == nil {
		t.Error("expected error submitting in idle phase")
	}
}

func TestReset_ClearsAllFields(t *testing.T) {
	s := readySession(t, "Python Basics")
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	s.Reset()

	if s.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", s.Phase())
	}
	if s.Topic() != "" || s.Quiz() != nil || s.Report() != nil {
		t.Error("reset should clear topic, quiz, and report")
	}
}
