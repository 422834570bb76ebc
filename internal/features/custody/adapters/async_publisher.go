package adapters

import (
	"context"
	"sync"

	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/features/custody/domain"
	"shipment-custody/internal/features/custody/ports"

	"go.uber.org/zap"
)

// DefaultEventQueueSize is the number of events buffered before new ones are dropped.
const DefaultEventQueueSize = 1024

// AsyncEventPublisher queues events and hands them to next from a single background
// worker, so Emit never waits on a broker or webhook. Events keep their emission order.
// A full queue drops the event with a warning.
type AsyncEventPublisher struct {
	next   ports.EventPublisher
	queue  chan domain.Event
	done   chan struct{}
	once   sync.Once
	mu     sync.RWMutex
	closed bool
	logger *zap.Logger
}

// NewAsyncEventPublisher starts the worker. size <= 0 uses DefaultEventQueueSize.
func NewAsyncEventPublisher(next ports.EventPublisher, size int) *AsyncEventPublisher {
	if size <= 0 {
		size = DefaultEventQueueSize
	}
	p := &AsyncEventPublisher{
		next:   next,
		queue:  make(chan domain.Event, size),
		done:   make(chan struct{}),
		logger: logger.Get(),
	}
	go p.run()
	return p
}

// Emit enqueues event without blocking. The caller's context is not carried over:
// it usually ends with the request while delivery is still pending.
func (p *AsyncEventPublisher) Emit(_ context.Context, event domain.Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("Event dropped after shutdown",
			zap.String("type", event.EventType()),
			zap.String("shipment_id", event.ShipmentRef()),
		)
		return
	}

	select {
	case p.queue <- event:
	default:
		p.logger.Warn("Event queue full, dropping event",
			zap.String("type", event.EventType()),
			zap.String("shipment_id", event.ShipmentRef()),
			zap.Int("capacity", cap(p.queue)),
		)
	}
}

func (p *AsyncEventPublisher) run() {
	defer close(p.done)
	for event := range p.queue {
		p.next.Emit(context.Background(), event)
	}
}

// Close stops accepting events and waits until the queued ones are delivered or ctx ends.
func (p *AsyncEventPublisher) Close(ctx context.Context) error {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		p.logger.Warn("Event queue not drained before shutdown", zap.Int("pending", len(p.queue)))
		return ctx.Err()
	}
}
