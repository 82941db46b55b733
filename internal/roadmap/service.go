// Package roadmap turns missed screening questions into a personalized
// remediation plan via the generation service.
package roadmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/pr1ncegupta/skillpath/internal/llm"
)

// Config controls roadmap generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended roadmap settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service generates remediation roadmaps.
type Service struct {
	provider llm.Provider
	config   Config
}

// NewService creates a roadmap Service with the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Generate requests a remediation roadmap for the missed questions.
//
// An empty weakPrompts list means the learner missed nothing; no
// request is issued and the roadmap is empty. The returned text is
// opaque markdown, rendered as-is and never parsed.
func (s *Service) Generate(ctx context.Context, topic string, weakPrompts []string) (string, error) {
	if len(weakPrompts) == 0 {
		return "", nil
	}

	ctx = llm.WithPurpose(ctx, "roadmap")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, weakPrompts)},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("roadmap generation failed: %w", err)
	}

	return strings.TrimSpace(string(resp.Content)), nil
}
