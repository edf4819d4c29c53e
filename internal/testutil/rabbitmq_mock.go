package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
)

// PublishedEvent represents an event that was captured instead of being sent
// to RabbitMQ
type PublishedEvent struct {
	RoutingKey string
	EventData  interface{}
	Timestamp  time.Time
	RawJSON    []byte
}

// MockPublisher stores published events in memory and never talks to a real
// broker
type MockPublisher struct {
	mu     sync.RWMutex
	events []PublishedEvent
}

// NewMockPublisher creates a new mock RabbitMQ publisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		events: make([]PublishedEvent, 0),
	}
}

// Publish stores an event in memory. Marshalling still happens so tests catch
// unserializable payloads.
func (m *MockPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(eventData)
	if err != nil {
		return err
	}

	m.events = append(m.events, PublishedEvent{
		RoutingKey: routingKey,
		EventData:  eventData,
		Timestamp:  time.Now(),
		RawJSON:    jsonData,
	})
	return nil
}

// Close is a no-op for mock publisher
func (m *MockPublisher) Close() error {
	return nil
}

// GetEventsByKey returns all events with the specified routing key
func (m *MockPublisher) GetEventsByKey(routingKey string) []PublishedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var filtered []PublishedEvent
	for _, event := range m.events {
		if event.RoutingKey == routingKey {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// GetEventCount returns the total number of events published
func (m *MockPublisher) GetEventCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.events)
}

// GetLastEventByKey returns the most recently published event with the given
// routing key, or nil
func (m *MockPublisher) GetLastEventByKey(routingKey string) *PublishedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.events) - 1; i >= 0; i-- {
		if m.events[i].RoutingKey == routingKey {
			event := m.events[i]
			return &event
		}
	}
	return nil
}

// Reset clears all published events (for test cleanup)
func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = make([]PublishedEvent, 0)
}

// AssertEventPublished asserts that at least one event with the given routing key was published
func (m *MockPublisher) AssertEventPublished(t *testing.T, routingKey string) {
	t.Helper()

	if len(m.GetEventsByKey(routingKey)) == 0 {
		t.Errorf("Expected event with routing key '%s' to be published, but found none", routingKey)
	}
}
