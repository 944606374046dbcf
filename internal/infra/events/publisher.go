package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Ensure KafkaPublisher implements shared.OrderEventPublisher
var _ shared.OrderEventPublisher = (*KafkaPublisher)(nil)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the JSON value written for every order event.
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	CustomerID int64     `json:"customer_id,omitempty"`
	Status     string    `json:"status"`
	PrevStatus string    `json:"previous_status,omitempty"`
	Total      string    `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaPublisher struct {
	writer MessageWriter
	logger *slog.Logger
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrderTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: timeout,
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaPublisher(writer MessageWriter, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev shared.OrderEvent) error {
	env := Envelope{
		ID:         uuid.NewString(),
		Type:       string(ev.Type),
		OrderID:    ev.OrderID,
		OrderCode:  order.FormatCode(ev.OrderID),
		CustomerID: ev.CustomerID,
		Status:     ev.Status,
		PrevStatus: ev.PrevStatus,
		Total:      ev.Total,
		OccurredAt: ev.OccurredAt,
	}

	data, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "encode order event")
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.Type)},
			{Key: "event_id", Value: []byte(env.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish event",
			"event_id", env.ID,
			"event_type", env.Type,
			"order_id", env.OrderID,
			"error", err.Error())
		return errs.Wrap(err, "write order event")
	}

	p.logger.Info("Event published",
		"event_id", env.ID,
		"event_type", env.Type,
		"order_id", env.OrderID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.logger.Info("Closing Kafka publisher")
	return p.writer.Close()
}

// LogPublisher records events in the log when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev shared.OrderEvent) error {
	p.logger.Info("order event",
		"event_type", string(ev.Type),
		"order_id", ev.OrderID,
		"status", ev.Status,
		"previous_status", ev.PrevStatus)
	return nil
}
