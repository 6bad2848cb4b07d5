// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-airboat/pkg/physics"
)

// Type represents the type of event
type Type string

// Session event types
const (
	SessionStarted Type = "session_started"
	SessionStopped Type = "session_stopped"
	VehicleReset   Type = "vehicle_reset"
	SceneryBuilt   Type = "scenery_built"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   Subscription
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: b.nextID, handler: handler})
	return b.nextID
}

// Unsubscribe removes a handler registered with Subscribe
func (b *Bus) Unsubscribe(eventType Type, id Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers, in subscription order.
// Handlers run on the caller's goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// SessionEvent is published when a session starts or stops
type SessionEvent struct {
	BaseEvent
	SessionID string
}

// NewSessionEvent creates a new session event
func NewSessionEvent(eventType Type, source interface{}, sessionID string) *SessionEvent {
	return &SessionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		SessionID: sessionID,
	}
}

// ResetEvent is published after the vehicle is put back at the origin
type ResetEvent struct {
	BaseEvent
	SessionID string
	// Where the vehicle was and how fast it moved before the reset
	Position physics.Vector2D
	Speed    float64
}

// NewResetEvent creates a new vehicle reset event
func NewResetEvent(source interface{}, sessionID string, position physics.Vector2D, speed float64) *ResetEvent {
	return &ResetEvent{
		BaseEvent: BaseEvent{
			EventType: VehicleReset,
			Source:    source,
		},
		SessionID: sessionID,
		Position:  position,
		Speed:     speed,
	}
}

// SceneryEvent describes freshly built world geometry
type SceneryEvent struct {
	BaseEvent
	Walls      int
	Placements int
	Bounds     physics.Rect
}

// NewSceneryEvent creates a new scenery built event
func NewSceneryEvent(source interface{}, walls, placements int, bounds physics.Rect) *SceneryEvent {
	return &SceneryEvent{
		BaseEvent: BaseEvent{
			EventType: SceneryBuilt,
			Source:    source,
		},
		Walls:      walls,
		Placements: placements,
		Bounds:     bounds,
	}
}
