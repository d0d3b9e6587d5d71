package service

import (
	"time"

	"pringles-wms/internal/model"
	"pringles-wms/internal/ws"
)

// Today returns the current calendar date in model.DateLayout.
type Today func() string

// LocalToday reports the current date in loc.
func LocalToday(loc *time.Location) Today {
	if loc == nil {
		loc = time.Local
	}
	return func() string {
		return time.Now().In(loc).Format(model.DateLayout)
	}
}

// EventPublisher receives a notification after every successful write.
type EventPublisher interface {
	Publish(event ws.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(ws.Event) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
