package adapters

import (
	"context"

	"shipment-custody/internal/features/custody/domain"
	"shipment-custody/internal/features/custody/ports"
)

// FanoutEventPublisher hands every event to each configured publisher in order.
type FanoutEventPublisher struct {
	publishers []ports.EventPublisher
}

// NewFanoutEventPublisher creates a publisher over publishers. With none it drops events.
func NewFanoutEventPublisher(publishers ...ports.EventPublisher) *FanoutEventPublisher {
	return &FanoutEventPublisher{publishers: publishers}
}

// Emit implements ports.EventPublisher.
func (f *FanoutEventPublisher) Emit(ctx context.Context, event domain.Event) {
	for _, p := range f.publishers {
		p.Emit(ctx, event)
	}
}
