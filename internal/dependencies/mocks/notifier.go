package mocks

import (
	"sync"

	"github.com/mcoot/feastgame/internal/model"
)

// MockNotifier records published events for testing
type MockNotifier struct {
	mu     sync.Mutex
	events []model.Event
	closed []model.SessionID
}

// NewMockNotifier creates a new MockNotifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Publish records the event
func (n *MockNotifier) Publish(event model.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

// Close records the session whose feed was closed
func (n *MockNotifier) Close(id model.SessionID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = append(n.closed, id)
}

// Events returns a copy of the recorded events
func (n *MockNotifier) Events() []model.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Event(nil), n.events...)
}

// Types returns the type of every recorded event, in order
func (n *MockNotifier) Types() []model.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	types := make([]model.EventType, len(n.events))
	for i, e := range n.events {
		types[i] = e.Type
	}
	return types
}

// Closed returns the sessions whose feeds were closed
func (n *MockNotifier) Closed() []model.SessionID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.SessionID(nil), n.closed...)
}

// Reset clears everything recorded
func (n *MockNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
	n.closed = nil
}
