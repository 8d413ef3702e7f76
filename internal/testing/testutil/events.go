package testutil

import (
	"context"
	"sync"

	"github.com/osse101/Minefut_Go/internal/event"
)

// EventRecorder captures published events for assertions
type EventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

// RecordEvents subscribes a new recorder to the given types, or to every
// engine event type when none are given
func RecordEvents(bus event.Bus, types ...event.Type) *EventRecorder {
	r := &EventRecorder{}
	if len(types) == 0 {
		types = event.AllTypes
	}
	for _, t := range types {
		bus.Subscribe(t, r.handle)
	}
	return r
}

func (r *EventRecorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

// Events returns the recorded events in publish order
func (r *EventRecorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// Types returns the recorded event types in publish order
func (r *EventRecorder) Types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// Count returns how many events of type t were recorded
func (r *EventRecorder) Count(t event.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
