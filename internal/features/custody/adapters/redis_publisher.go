package adapters

import (
	"context"

	"shipment-custody/internal/core/cache"
	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/features/custody/domain"

	"go.uber.org/zap"
)

// RedisEventPublisher broadcasts events on a Redis pub/sub channel.
type RedisEventPublisher struct {
	publisher cache.Publisher
	channel   string
	logger    *zap.Logger
}

// NewRedisEventPublisher creates a new RedisEventPublisher.
func NewRedisEventPublisher(p cache.Publisher, channel string) *RedisEventPublisher {
	return &RedisEventPublisher{
		publisher: p,
		channel:   channel,
		logger:    logger.Get(),
	}
}

// Emit publishes event. Failures are logged and otherwise ignored.
func (p *RedisEventPublisher) Emit(ctx context.Context, event domain.Event) {
	env, data, err := encodeEvent(event)
	if err != nil {
		p.logger.Error("Failed to encode event", zap.String("type", event.EventType()), zap.Error(err))
		return
	}

	receivers, err := p.publisher.Publish(ctx, p.channel, data)
	if err != nil {
		p.logger.Warn("Failed to publish event",
			zap.String("channel", p.channel),
			zap.String("event_id", env.ID),
			zap.String("type", env.Type),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("Event published",
		zap.String("channel", p.channel),
		zap.String("event_id", env.ID),
		zap.String("type", env.Type),
		zap.Int64("receivers", receivers),
	)
}
