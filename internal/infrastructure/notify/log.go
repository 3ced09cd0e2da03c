package notify

import "log"

// LogNotifier writes user-facing notifications to the server log. It
// stands in for the toast sink of the storefront UI; delivery is fire
// and forget.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notification
func (n *LogNotifier) Notify(title, message string) {
	log.Printf("[notify] %s: %s", title, message)
}
