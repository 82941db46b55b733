package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndListLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMEvent(ctx, LLMEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "screening-test",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[user]\nGenerate a test",
		ResponseBody: `[{"id":1}]`,
	})
	require.NoError(t, err)

	err = repo.AppendLLMEvent(ctx, LLMEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "roadmap",
		Success:      false,
		ErrorMessage: "generation service unavailable",
	})
	require.NoError(t, err)

	events, err := repo.ListLLMEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	require.Equal(t, "roadmap", events[0].Purpose)
	require.False(t, events[0].Success)
	require.Equal(t, "screening-test", events[1].Purpose)
	require.Equal(t, 480, events[1].OutputTokens)
}

func TestListLLMEvents_Limit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 5 {
		require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
			Provider: "mock", Model: "mock", Purpose: "screening-test", Success: true,
		}))
	}

	events, err := repo.ListLLMEvents(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
		Provider: "mock", Model: "mock", Purpose: "screening-test", Success: true,
		ResponseBody: `[{"id":1}]`,
	}))

	events, err := repo.ListLLMEvents(ctx, 1)
	require.NoError(t, err)

	event, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, event)
	require.Equal(t, `[{"id":1}]`, event.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}
