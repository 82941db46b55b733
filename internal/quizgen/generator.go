package quizgen

import (
	"context"
	"fmt"

	"github.com/pr1ncegupta/skillpath/internal/llm"
	"github.com/pr1ncegupta/skillpath/internal/quiz"
)

// Generator produces screening tests for a topic.
type Generator interface {
	// Generate requests a test from the generation service and returns
	// the parsed, validated quiz. Service and parse failures are
	// equivalent for the caller: the attempt is over.
	Generate(ctx context.Context, topic string) (quiz.QuizSet, error)
}

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate requests a screening test for the topic.
//
// The request carries TestSchema so providers with native structured
// output constrain generation, but the completion is still treated as
// untrusted free text: quiz.Parse does the bracket extraction and
// per-question validation regardless of which provider produced it.
func (g *LLMGenerator) Generate(ctx context.Context, topic string) (quiz.QuizSet, error) {
	ctx = llm.WithPurpose(ctx, "screening-test")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic)},
		},
		Schema:      TestSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("test generation failed: %w", err)
	}

	set, err := quiz.Parse(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("test generation returned an unusable completion: %w", err)
	}

	return set, nil
}
