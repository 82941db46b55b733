package quiz

// Question is a single screening-test item.
type Question struct {
	// ID is a positive integer, unique within a test. It keys the
	// learner's answer and fixes the answer-matching order.
	ID int `json:"id"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"prompt"`

	// Choices are the selectable options, in display order.
	// The contract asks the model for exactly 4, but anything with at
	// least 2 entries containing Answer is accepted.
	Choices []string `json:"choices"`

	// Answer is the canonical correct choice. Always one of Choices;
	// Parse rejects questions where it is not.
	Answer string `json:"answer"`
}

// QuizSet is the ordered set of questions for one topic activation.
// Array order from the model is canonical; questions are never re-sorted
// by ID.
type QuizSet []Question

// AnswerRecord maps a question ID to the learner's selected choice text.
// A missing entry means the question was left unanswered.
type AnswerRecord map[int]string

// Verdict is the per-question outcome of scoring.
type Verdict struct {
	Prompt    string
	Submitted string
	Answer    string
	Correct   bool
}

// ScoreReport is the aggregate result of scoring one submission.
// Verdicts preserve QuizSet order.
type ScoreReport struct {
	Correct  int
	Total    int
	Verdicts []Verdict
}

// Perfect reports whether every question was answered correctly.
// A perfect report means no remediation roadmap is needed.
func (r ScoreReport) Perfect() bool {
	return r.Correct == r.Total
}
