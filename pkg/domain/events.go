package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCast  EventType = "cast"
	EventError EventType = "error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CastEvent is emitted once a reading has been fully computed.
type CastEvent struct {
	EventBase
	Reading  *Reading      `json:"reading"`
	Duration time.Duration `json:"duration"`
}

// ErrorEvent is emitted when a cast is rejected.
type ErrorEvent struct {
	EventBase
	Method Method `json:"method"`
	Err    error  `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnCast  func(context.Context, *CastEvent)
	OnError func(context.Context, *ErrorEvent)
}
