package service

import (
	"context"
	"sync"

	"github.com/hbnb/hbnb-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.EntityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// recordingEmitter collects emitted events in order.
type recordingEmitter struct {
	mu     sync.Mutex
	types  []string
	events []*events.EntityEvent
}

func (r *recordingEmitter) EmitEvent(_ context.Context, event *events.EntityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, event.Type)
	r.events = append(r.events, event)
	return nil
}

// Last returns the most recent event of the given type, or nil.
func (r *recordingEmitter) Last(eventType string) *events.EntityEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == eventType {
			return r.events[i]
		}
	}
	return nil
}

func (r *recordingEmitter) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.types...)
}
