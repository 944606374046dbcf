//go:build unit

package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"dryclean-api/internal/infra/events"
	"dryclean-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestKafkaPublisher_Publish(t *testing.T) {
	occurred := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("status change envelope", func(t *testing.T) {
		w := &recordingWriter{}
		p := events.NewKafkaPublisher(w, slog.Default())

		err := p.Publish(context.Background(), shared.OrderEvent{
			Type:       shared.OrderStatusChanged,
			OrderID:    42,
			Status:     "YIKANIYOR",
			PrevStatus: "ALINDI",
			OccurredAt: occurred,
		})
		require.NoError(t, err)
		require.Len(t, w.msgs, 1)

		msg := w.msgs[0]
		assert.Equal(t, "42", string(msg.Key))
		assert.Equal(t, "order.status_changed", header(msg, "event_type"))

		var env events.Envelope
		require.NoError(t, json.Unmarshal(msg.Value, &env))
		assert.Equal(t, header(msg, "event_id"), env.ID)
		_, err = uuid.Parse(env.ID)
		assert.NoError(t, err)
		assert.Equal(t, "SP-42", env.OrderCode)
		assert.Equal(t, "YIKANIYOR", env.Status)
		assert.Equal(t, "ALINDI", env.PrevStatus)
		assert.True(t, occurred.Equal(env.OccurredAt))
	})

	t.Run("writer failure is returned", func(t *testing.T) {
		w := &recordingWriter{err: errors.New("broker down")}
		p := events.NewKafkaPublisher(w, slog.Default())

		err := p.Publish(context.Background(), shared.OrderEvent{Type: shared.OrderCreated, OrderID: 1})
		assert.Error(t, err)
	})

	t.Run("close closes writer", func(t *testing.T) {
		w := &recordingWriter{}
		require.NoError(t, events.NewKafkaPublisher(w, slog.Default()).Close())
		assert.True(t, w.closed)
	})
}

func TestLogPublisher_NeverFails(t *testing.T) {
	p := events.NewLogPublisher(slog.Default())
	assert.NoError(t, p.Publish(context.Background(), shared.OrderEvent{Type: shared.OrderCreated, OrderID: 7}))
}
