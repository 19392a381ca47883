// Package fanout combines several event publishers behind one.
package fanout

import (
	"context"

	"marketplace/internal/core/domain/events"
	"marketplace/internal/core/ports"
)

// Publisher forwards every event to all wrapped publishers. Each target is
// itself best effort, so one failing sink never hides an event from the rest.
type Publisher struct {
	targets []ports.EventPublisher
}

// NewPublisher combines the given publishers.
func NewPublisher(targets ...ports.EventPublisher) *Publisher {
	return &Publisher{targets: targets}
}

// Publish forwards the events to every target in order.
func (p *Publisher) Publish(ctx context.Context, evts ...events.Event) {
	for _, target := range p.targets {
		target.Publish(ctx, evts...)
	}
}
