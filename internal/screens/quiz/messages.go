package quiz

import (
	"time"

	qz "github.com/pr1ncegupta/skillpath/internal/quiz"
)

// testReadyMsg is sent when the screening test has been generated.
// Seq ties the result to the topic activation that requested it; a
// mismatch means the learner changed topics mid-flight and the result
// is dropped.
type testReadyMsg struct {
	Seq uint64
	Set qz.QuizSet
	Err error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
