package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoArrayFound is returned by Parse when the completion contains no
// bracketed JSON array at all.
var ErrNoArrayFound = errors.New("no JSON array found in completion")

// InvalidJSONError wraps a JSON syntax error in the extracted array.
type InvalidJSONError struct {
	Err error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("extracted array is not valid JSON: %v", e.Err)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// InvalidQuestionError reports a structurally present but unusable
// question. Index is the zero-based position in the array, Field the
// offending field.
type InvalidQuestionError struct {
	Index int
	Field string
}

func (e *InvalidQuestionError) Error() string {
	return fmt.Sprintf("question %d: invalid field %q", e.Index, e.Field)
}

// rawQuestion is the untrusted shape straight out of the model, before
// any field is confirmed present and correctly typed.
type rawQuestion struct {
	ID      *int      `json:"id"`
	Prompt  *string   `json:"prompt"`
	Choices *[]string `json:"choices"`
	Answer  *string   `json:"answer"`
}

// Parse extracts and validates a quiz from a raw model completion.
//
// The completion is expected to contain one JSON array but is routinely
// wrapped in prose or markdown fences, so Parse slices from the first
// '[' to the last ']' instead of demanding clean JSON. Stray brackets
// inside surrounding prose can defeat this, an accepted trade-off for a
// bounded, semi-trusted source.
//
// One malformed question rejects the whole set. A partially valid test
// cannot be scored coherently, so nothing short of a fully valid array
// ever reaches the session.
func Parse(raw string) (QuizSet, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoArrayFound
	}

	var items []rawQuestion
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		return nil, &InvalidJSONError{Err: err}
	}

	set := make(QuizSet, 0, len(items))
	seen := make(map[int]bool, len(items))
	for i, item := range items {
		q, err := validateQuestion(i, item)
		if err != nil {
			return nil, err
		}
		// IDs key the answer record; a repeat would alias one
		// question's answer onto another.
		if seen[q.ID] {
			return nil, &InvalidQuestionError{Index: i, Field: "id"}
		}
		seen[q.ID] = true
		set = append(set, q)
	}
	return set, nil
}

// validateQuestion promotes a rawQuestion into the typed model. Invalid
// records never become a Question.
func validateQuestion(index int, r rawQuestion) (Question, error) {
	switch {
	case r.ID == nil || *r.ID <= 0:
		return Question{}, &InvalidQuestionError{Index: index, Field: "id"}
	case r.Prompt == nil || strings.TrimSpace(*r.Prompt) == "":
		return Question{}, &InvalidQuestionError{Index: index, Field: "prompt"}
	case r.Choices == nil || len(*r.Choices) < 2:
		return Question{}, &InvalidQuestionError{Index: index, Field: "choices"}
	case r.Answer == nil || *r.Answer == "":
		return Question{}, &InvalidQuestionError{Index: index, Field: "answer"}
	}

	found := false
	for _, c := range *r.Choices {
		if c == *r.Answer {
			found = true
			break
		}
	}
	if !found {
		// Scoring against an answer that is not offered as a choice is
		// undefined, so the question is malformed.
		return Question{}, &InvalidQuestionError{Index: index, Field: "answer"}
	}

	return Question{
		ID:      *r.ID,
		Prompt:  *r.Prompt,
		Choices: *r.Choices,
		Answer:  *r.Answer,
	}, nil
}
