package quizgen

// NumQuestions is the number of questions requested per screening test.
const NumQuestions = 5

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the generated test.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0). Some variety
	// between regenerations of the same topic is desirable.
	Temperature float64
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
