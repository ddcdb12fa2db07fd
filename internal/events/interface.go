// Package events delivers board change notifications to renderers.
package events

// EventPublisher defines the interface for sending events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// SendEvent delivers an event to every subscriber
	SendEvent(event Event) error

	// Close stops delivery and closes all subscriber channels
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)

// Subscriber is implemented by publishers that deliver events in-process.
// The returned func unsubscribes and closes the channel.
type Subscriber interface {
	Subscribe(buffer int) (<-chan Event, func())
}

var _ Subscriber = (*Bus)(nil)
