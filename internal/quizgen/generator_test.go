package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pr1ncegupta/skillpath/internal/llm"
	"github.com/pr1ncegupta/skillpath/internal/quiz"
)

const mockCompletion = `{"questions": [
  {"id": 1, "prompt": "Which keyword defines a function?", "choices": ["func", "def", "fn", "lambda"], "answer": "def"},
  {"id": 2, "prompt": "What does len([1, 2, 3]) return?", "choices": ["2", "3", "4", "error"], "answer": "3"}
]}`

func TestGenerate_ParsesCompletion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(mockCompletion)},
	)
	g := New(mock, DefaultConfig())

	set, err := g.Generate(context.Background(), "Python Basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("len = %d, want 2", len(set))
	}
	if set[0].Answer != "def" {
		t.Errorf("answer = %q, want def", set[0].Answer)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(mockCompletion)},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), "Data Structures"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "screening-test" {
		t.Error("request should carry the screening-test schema")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: Data Structures") {
		t.Errorf("user message missing topic: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.System, "exactly 5 multiple-choice questions") {
		t.Error("system prompt should demand exactly 5 questions")
	}
	if !strings.Contains(req.System, "ONLY a JSON array") {
		t.Error("system prompt should demand a bare JSON array")
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), "Python Basics")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerate_UnparseableCompletion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"I'm sorry, I can't help with that."`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), "Python Basics")
	if !errors.Is(err, quiz.ErrNoArrayFound) {
		t.Fatalf("expected wrapped ErrNoArrayFound, got %v", err)
	}
}

func TestGenerate_MalformedQuestionRejectsTest(t *testing.T) {
	bad := `[{"id": 1, "prompt": "Q?", "choices": ["a", "b", "c", "d"], "answer": "nope"}]`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), "Python Basics")
	var invalid *quiz.InvalidQuestionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected wrapped InvalidQuestionError, got %v", err)
	}
}
