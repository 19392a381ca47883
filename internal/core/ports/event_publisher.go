package ports

import (
	"context"

	"marketplace/internal/core/domain/events"
)

// EventPublisher delivers domain events to interested parties after the
// owning transaction commits. Delivery is best effort; implementations log
// failures instead of returning them, so a broker outage never fails the
// business operation that already committed.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event)
}
