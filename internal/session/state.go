package session

// Phase represents the current phase of a screening session.
type Phase int

const (
	PhaseIdle       Phase = iota // No topic chosen
	PhaseGenerating              // Test generation request in flight
	PhaseReady                   // Quiz populated, collecting answers
	PhaseScored                  // Score report computed
)

// String returns the phase name for logging and error messages.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGenerating:
		return "generating"
	case PhaseReady:
		return "ready"
	case PhaseScored:
		return "scored"
	default:
		return "unknown"
	}
}
