package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RabbitMQStoryEventPublisher publishes story events to a durable topic exchange.
// The event type is the routing key.
type RabbitMQStoryEventPublisher struct {
	ch           *amqp091.Channel
	mu           sync.Mutex
	logger       *zap.Logger
	exchangeName string
}

var _ interfaces.StoryEventPublisher = (*RabbitMQStoryEventPublisher)(nil)

// NewRabbitMQStoryEventPublisher opens a channel and declares the exchange.
// An empty exchangeName uses StoryEventsExchangeName.
func NewRabbitMQStoryEventPublisher(conn *amqp091.Connection, exchangeName string, logger *zap.Logger) (*RabbitMQStoryEventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}
	if exchangeName == "" {
		exchangeName = StoryEventsExchangeName
	}
	log := logger.Named("StoryEventPublisher")

	ch, err := conn.Channel()
	if err != nil {
		log.Error("Failed to open a channel", zap.Error(err))
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchangeName,
		StoryEventsExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		log.Error("Failed to declare story events exchange", zap.String("exchange", exchangeName), zap.Error(err))
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}
	log.Info("Story events exchange declared", zap.String("exchange", exchangeName))

	return &RabbitMQStoryEventPublisher{ch: ch, logger: log, exchangeName: exchangeName}, nil
}

// PublishStoryEvent sends the event as persistent JSON.
func (p *RabbitMQStoryEventPublisher) PublishStoryEvent(ctx context.Context, event models.StoryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal story event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx,
		p.exchangeName,
		string(event.Type),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.EventID.String(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish story event",
			zap.String("type", string(event.Type)), zap.String("storyID", event.StoryID.String()), zap.Error(err))
		return fmt.Errorf("failed to publish story event: %w", err)
	}
	p.logger.Debug("Story event published", zap.String("type", string(event.Type)), zap.String("eventID", event.EventID.String()))
	return nil
}

// Close closes the channel. The connection is owned by the caller.
func (p *RabbitMQStoryEventPublisher) Close() error {
	if p.ch != nil {
		return p.ch.Close()
	}
	return nil
}

// NoopStoryEventPublisher drops events. Used when no broker is configured.
type NoopStoryEventPublisher struct{}

var _ interfaces.StoryEventPublisher = NoopStoryEventPublisher{}

func (NoopStoryEventPublisher) PublishStoryEvent(context.Context, models.StoryEvent) error {
	return nil
}
