package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a technical screening assistant creating short placement tests.

Rules:
- Generate exactly 5 multiple-choice questions for the given topic, at beginner to intermediate level.
- Number the questions with "id" 1 through 5.
- Each question has exactly 4 "choices" and one "answer" copied verbatim from its choices.
- Questions must be self-contained, unambiguous, and answerable without external material.
- Distractors should reflect common misconceptions, not random values.
- Respond with ONLY a JSON array. No introduction, no commentary, no markdown fences.`

// buildUserMessage constructs the test-generation request for a topic.
func buildUserMessage(topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	b.WriteString("Produce the screening test as a JSON array matching this shape exactly:\n\n")
	b.WriteString(exampleShape)

	return b.String()
}

// exampleShape anchors the output format. Models follow a concrete
// example far more reliably than a prose description of the schema.
const exampleShape = `[
  {
    "id": 1,
    "prompt": "Which of the following creates an empty dictionary?",
    "choices": ["{}", "[]", "()", "dict[]"],
    "answer": "{}"
  }
]`
