package search

import "time"

// Monitor receives notifications about search activity. Implementations
// must be safe for concurrent use; batch searches invoke hooks from
// multiple goroutines.
type Monitor interface {
	// SearchStarted is called when a query begins evaluation.
	SearchStarted(query string)

	// SearchCompleted is called after a query finishes, with the number
	// of matches returned and the elapsed wall time.
	SearchCompleted(query string, matches int, elapsed time.Duration)
}

type nopMonitor struct{}

func (nopMonitor) SearchStarted(string)                       {}
func (nopMonitor) SearchCompleted(string, int, time.Duration) {}

// NopMonitor returns a Monitor that discards all notifications.
func NopMonitor() Monitor {
	return nopMonitor{}
}
