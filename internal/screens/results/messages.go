package results

import "time"

// roadmapReadyMsg is sent when the remediation roadmap has been generated.
type roadmapReadyMsg struct {
	Text string
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
