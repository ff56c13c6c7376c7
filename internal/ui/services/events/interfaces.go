package events

import "tftlookup/internal/domain"

// Publisher is the slice of the event bus UI services need
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// NullBus is a no-op implementation of Publisher
type NullBus struct{}

func (n NullBus) Publish(event domain.DomainEvent) {}

// Recorder keeps published events in memory
type Recorder struct {
	Events []domain.DomainEvent
}

func (r *Recorder) Publish(event domain.DomainEvent) {
	r.Events = append(r.Events, event)
}

// Types returns the type of every recorded event in order
func (r *Recorder) Types() []domain.EventType {
	types := make([]domain.EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type()
	}
	return types
}
