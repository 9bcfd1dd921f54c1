// Package amqp publishes domain events to a RabbitMQ topic exchange.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

const publishTimeout = 5 * time.Second

// Message is the JSON body of a published event.
type Message struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	UserID     uuid.UUID  `json:"user_id"`
	ExpenseID  *uuid.UUID `json:"expense_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewMessage converts a domain event into its wire form.
func NewMessage(e domain.Event) Message {
	return Message{
		ID:         e.ID,
		Type:       e.Type.String(),
		UserID:     e.UserID,
		ExpenseID:  e.ExpenseID,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

// Publisher sends events to a durable topic exchange. The routing key is the
// event type, so consumers bind to e.g. "expense.*" or "user.deleted".
type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	log      *slog.Logger
}

// NewPublisher dials the broker and declares the exchange.
func NewPublisher(logger *slog.Logger, url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		log:      logger.With("adapter", "amqp"),
	}, nil
}

// Publish sends one event as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, e domain.Event) error {
	body, err := json.Marshal(NewMessage(e))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,      // exchange
		e.Type.String(), // routing key
		false,           // mandatory
		false,           // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    e.ID.String(),
			Timestamp:    e.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp.Publish: %w", err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("type", e.Type.String()),
		slog.String("user_id", e.UserID.String()),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event. It is used when no broker URL is configured.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, domain.Event) error { return nil }
