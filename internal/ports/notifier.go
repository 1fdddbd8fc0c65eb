package ports

import "context"

// Notifier surfaces short-lived success and failure messages to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type Clipboard interface {
	WriteAll(text string) error
}

// Publisher makes a local media file publicly reachable and returns its URL.
type Publisher interface {
	Publish(ctx context.Context, data []byte, contentType string) (string, error)
}
