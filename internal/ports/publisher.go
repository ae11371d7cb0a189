package ports

import "github.com/renato0307/hotline/internal/domain"

// EventPublisher fans realtime messages out to connected listeners.
// Publish never blocks on slow or disconnected listeners.
type EventPublisher interface {
	Publish(msg domain.Message)
}
