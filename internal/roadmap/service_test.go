package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pr1ncegupta/skillpath/internal/llm"
)

func TestGenerate_ReturnsRoadmapText(t *testing.T) {
	plan := "- **Review list operations**: Practice indexing and slicing. [Python docs](https://docs.python.org/3/tutorial/introduction.html#lists)"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(plan)},
	)
	s := NewService(mock, DefaultConfig())

	got, err := s.Generate(context.Background(), "Python Basics", []string{"What does len([1, 2, 3]) return?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != plan {
		t.Errorf("roadmap = %q, want the completion verbatim", got)
	}
}

func TestGenerate_NoWeakPromptsSkipsRequest(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	got, err := s.Generate(context.Background(), "Python Basics", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("roadmap = %q, want empty", got)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 generation calls, got %d", mock.CallCount())
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("- step")},
	)
	s := NewService(mock, DefaultConfig())

	weak := []string{"Which keyword defines a function?", "What is a stack?"}
	if _, err := s.Generate(context.Background(), "Data Structures", weak); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("roadmap requests should not carry a schema; output is opaque markdown")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Topic: Data Structures") {
		t.Errorf("user message missing topic: %q", msg)
	}
	for _, w := range weak {
		if !strings.Contains(msg, w) {
			t.Errorf("user message missing weak prompt %q", w)
		}
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewService(mock, DefaultConfig())

	_, err := s.Generate(context.Background(), "Python Basics", []string{"Q?"})
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}
