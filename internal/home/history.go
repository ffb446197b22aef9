package home

import (
	"sync"
	"time"
)

// EventKind classifies history entries.
type EventKind string

// History event kinds.
const (
	EventMotion      EventKind = "motion"
	EventSmoke       EventKind = "smoke"
	EventGas         EventKind = "gas"
	EventAcknowledge EventKind = "acknowledge"
	EventStep        EventKind = "step"
	EventSecurity    EventKind = "security"
	EventDetection   EventKind = "detection"
	EventDevice      EventKind = "device"
)

// DefaultHistoryLimit is how many events the history keeps.
const DefaultHistoryLimit = 100

// Event is one history entry.
type Event struct {
	// At is when the event happened.
	At time.Time
	// Kind classifies the event.
	Kind EventKind
	// Actor is who caused it, when known.
	Actor *Actor
	// Detail is a human-readable summary.
	Detail string
}

// Clone returns a copy of the event that shares no pointers with it.
func (e *Event) Clone() Event {
	return Event{
		At:     e.At,
		Kind:   e.Kind,
		Actor:  e.Actor.Clone(),
		Detail: e.Detail,
	}
}

// History is a bounded, concurrency-safe event log. Oldest entries drop first.
type History struct {
	mu     sync.Mutex
	limit  int
	events []Event
	now    func() time.Time
}

// NewHistory creates a history keeping at most limit events.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &History{
		limit: limit,
		now:   time.Now,
	}
}

// Record appends an event.
func (h *History) Record(kind EventKind, actor *Actor, detail string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, Event{
		At:     h.now(),
		Kind:   kind,
		Actor:  actor.Clone(),
		Detail: detail,
	})

	if over := len(h.events) - h.limit; over > 0 {
		h.events = append(h.events[:0], h.events[over:]...)
	}
}

// Events returns a copy of the recorded events, oldest first.
func (h *History) Events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Event, 0, len(h.events))
	for i := range h.events {
		out = append(out, h.events[i].Clone())
	}

	return out
}
