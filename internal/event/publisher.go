package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyAlertRaised     = "portfolio.alert.raised"
	routingKeySnapshotRebuilt = "portfolio.snapshot.rebuilt"
	publisherAppID            = "credit-dashboard"
)

// AlertRaisedEvent is emitted when the portfolio delinquency rate crosses a
// configured threshold after a snapshot rebuild.
type AlertRaisedEvent struct {
	Level           string    `json:"level"`
	DelinquencyRate float64   `json:"delinquencyRate"`
	OverdueTotal    float64   `json:"overdueTotal"`
	Timestamp       time.Time `json:"timestamp"`
}

// SnapshotRebuiltEvent is emitted after every successful snapshot rebuild.
type SnapshotRebuiltEvent struct {
	Seed         int64     `json:"seed"`
	Loans        int       `json:"loans"`
	Installments int       `json:"installments"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

type EventPublisher interface {
	PublishAlertRaised(ctx context.Context, event AlertRaisedEvent) error
	PublishSnapshotRebuilt(ctx context.Context, event SnapshotRebuiltEvent) error
}

type RabbitMQEventPublisher struct {
	conn         *amqp.Connection
	exchangeName string
	logger       *slog.Logger
}

func NewRabbitMQEventPublisher(conn *amqp.Connection, exchangeName string, logger *slog.Logger) (EventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("RabbitMQ connection cannot be nil")
	}
	if exchangeName == "" {
		return nil, fmt.Errorf("RabbitMQ exchange name cannot be empty")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	tempCh, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary channel for exchange declaration: %w", err)
	}
	defer tempCh.Close()

	err = tempCh.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}
	logger.Info("Ensured RabbitMQ exchange exists", "exchange", exchangeName, "type", amqp.ExchangeTopic)

	return &RabbitMQEventPublisher{
		conn:         conn,
		exchangeName: exchangeName,
		logger:       logger.With("component", "RabbitMQEventPublisher", "exchange", exchangeName),
	}, nil
}

func (p *RabbitMQEventPublisher) PublishAlertRaised(ctx context.Context, event AlertRaisedEvent) error {
	return p.publish(ctx, routingKeyAlertRaised, event)
}

func (p *RabbitMQEventPublisher) PublishSnapshotRebuilt(ctx context.Context, event SnapshotRebuiltEvent) error {
	return p.publish(ctx, routingKeySnapshotRebuilt, event)
}

func (p *RabbitMQEventPublisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	logCtx := p.logger.With(slog.String("routingKey", routingKey))

	channel, err := p.conn.Channel()
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to open RabbitMQ channel", slog.Any("error", err))
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer channel.Close()

	body, err := json.Marshal(payload)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to marshal event payload to JSON", slog.Any("error", err))
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = channel.PublishWithContext(
		ctx,
		p.exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
			AppId:        publisherAppID,
		},
	)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to publish message to RabbitMQ", slog.Any("error", err))
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logCtx.DebugContext(ctx, "Published message", "bodySize", len(body))
	return nil
}

// NoopPublisher is used when no broker is configured; the dashboard runs
// standalone and alert events are only logged.
type NoopPublisher struct {
	Logger *slog.Logger
}

func (n NoopPublisher) PublishAlertRaised(ctx context.Context, event AlertRaisedEvent) error {
	if n.Logger != nil {
		n.Logger.InfoContext(ctx, "Alert raised (no broker configured)",
			"level", event.Level, "delinquencyRate", event.DelinquencyRate)
	}
	return nil
}

func (n NoopPublisher) PublishSnapshotRebuilt(ctx context.Context, event SnapshotRebuiltEvent) error {
	return nil
}
