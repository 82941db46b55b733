package roadmap

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a learning coach writing short remediation plans.

Rules:
- The learner just failed specific questions on a screening test; build a step-by-step plan that closes exactly those gaps.
- Order steps from foundations to advanced.
- Each step is one markdown list item: a bold step title, a brief one or two sentence explanation, and one resource link.
- Respond with ONLY the markdown list. No introduction, no closing remarks.`

// buildUserMessage constructs the roadmap request from the topic and
// the prompts of the missed questions.
func buildUserMessage(topic string, weakPrompts []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	b.WriteString("Questions the learner answered incorrectly:\n")
	for i, p := range weakPrompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	b.WriteString("\nWrite the remediation roadmap.")

	return b.String()
}
