package quiz

// Score compares the learner's answers against the canonical answers.
// It is pure: identical inputs always yield an identical report.
//
// An unanswered question (no AnswerRecord entry) is scored incorrect,
// never treated as an error. Comparison is exact text equality against
// the canonical answer.
func Score(set QuizSet, answers AnswerRecord) ScoreReport {
	report := ScoreReport{
		Total:    len(set),
		Verdicts: make([]Verdict, 0, len(set)),
	}

	for _, q := range set {
		submitted := answers[q.ID]
		correct := submitted == q.Answer
		if correct {
			report.Correct++
		}
		report.Verdicts = append(report.Verdicts, Verdict{
			Prompt:    q.Prompt,
			Submitted: submitted,
			Answer:    q.Answer,
			Correct:   correct,
		})
	}

	return report
}

// WeakPrompts returns the prompts of every incorrectly answered question,
// in report order. These drive roadmap generation; an empty result means
// no remediation is needed.
func WeakPrompts(report ScoreReport) []string {
	var weak []string
	for _, v := range report.Verdicts {
		if !v.Correct {
			weak = append(weak, v.Prompt)
		}
	}
	return weak
}
