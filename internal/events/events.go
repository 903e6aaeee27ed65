package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action describes what happened to an entity.
type Action string

// Lifecycle actions emitted by the service layer.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// EntityEvent records a committed change to one entity.
type EntityEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is "<entity>.<action>", for example "review.deleted"
	Type string `json:"type"`

	// Entity is the entity kind ("user", "place", "review", "amenity")
	Entity string `json:"entity"`

	// Action is the lifecycle action
	Action Action `json:"action"`

	// EntityID identifies the changed entity
	EntityID uuid.UUID `json:"entity_id"`

	// Payload holds the entity state after the change, serialized as JSON.
	// For deletions it is the last state before removal.
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *EntityEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEntityEvent creates an EntityEvent. payload may be nil.
func NewEntityEvent(entity string, action Action, entityID uuid.UUID, payload interface{}) (*EntityEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s event payload: %w", entity, err)
		}
		payloadBytes = b
	}

	return &EntityEvent{
		ID:        uuid.New(),
		Type:      entity + "." + string(action),
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *EntityEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *EntityEvent) error
}

// NopEmitter discards every event.
type NopEmitter struct{}

// EmitEvent implements EventEmitter.
func (NopEmitter) EmitEvent(context.Context, *EntityEvent) error { return nil }
