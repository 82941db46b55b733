package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	qz "github.com/pr1ncegupta/skillpath/internal/quiz"
	"github.com/pr1ncegupta/skillpath/internal/router"
	sess "github.com/pr1ncegupta/skillpath/internal/session"
	"github.com/pr1ncegupta/skillpath/internal/topics"
)

type mockGenerator struct{}

func (mockGenerator) Generate(context.Context, string) (qz.QuizSet, error) {
	return nil, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestHomeScreen_MenuHasCatalogAndExtras(t *testing.T) {
	h := New(sess.New(), mockGenerator{}, nil)

	want := len(topics.Catalog) + 2 // custom topic + quit
	if got := len(h.menu.Items); got != want {
		t.Errorf("menu items = %d, want %d", got, want)
	}
}

func TestHomeScreen_SelectTopicPushesQuiz(t *testing.T) {
	h := New(sess.New(), mockGenerator{}, nil)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from topic selection")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", msg)
	}
}

func TestHomeScreen_NoProviderShowsError(t *testing.T) {
	h := New(sess.New(), nil, nil)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command without a provider")
	}
	if h.errMsg == "" {
		t.Error("expected an error message without a provider")
	}
}

func TestHomeScreen_CustomTopicEntry(t *testing.T) {
	h := New(sess.New(), mockGenerator{}, nil)

	// Navigate to the "Custom topic" item.
	for range topics.Catalog {
		h.Update(specialKey(tea.KeyDown))
	}
	h.Update(specialKey(tea.KeyEnter))
	if !h.entering {
		t.Fatal("expected custom-topic input to be active")
	}

	// Enter on a blank input does nothing.
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd != nil || !h.entering {
		t.Error("expected blank topic to be rejected")
	}

	// Esc cancels back to the menu.
	h.Update(specialKey(tea.KeyEscape))
	if h.entering {
		t.Error("expected Esc to cancel custom-topic entry")
	}
}

func TestHomeScreen_CustomTopicStarts(t *testing.T) {
	h := New(sess.New(), mockGenerator{}, nil)

	for range topics.Catalog {
		h.Update(specialKey(tea.KeyDown))
	}
	h.Update(specialKey(tea.KeyEnter))

	h.input.Model.SetValue("SQL joins")
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from custom topic start")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", msg)
	}
	if h.entering {
		t.Error("expected input to close after starting")
	}
}
