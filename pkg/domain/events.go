package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventThemeResolved      EventType = "theme_resolved"
	EventStylesheetRendered EventType = "stylesheet_rendered"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ResolveEvent is emitted after a theme's layer chain was built.
type ResolveEvent struct {
	EventBase
	Theme  string        `json:"theme"`
	Layers int           `json:"layers"`
	Took   time.Duration `json:"took"`
}

// RenderEvent is emitted after a stylesheet was produced.
type RenderEvent struct {
	EventBase
	Theme        string        `json:"theme"`
	Declarations int           `json:"declarations"`
	Cached       bool          `json:"cached"`
	Took         time.Duration `json:"took"`
}

// Hooks defines callbacks for engine observability. Nil callbacks are skipped.
type Hooks struct {
	OnThemeResolved      func(context.Context, *ResolveEvent)
	OnStylesheetRendered func(context.Context, *RenderEvent)
}
