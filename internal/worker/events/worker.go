package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hngpack/packaging-svc/internal/service/models/order"
	"github.com/spf13/viper"
)

// publisher sends a message body to a named queue.
type publisher interface {
	Publish(queueName string, contentType string, body []byte) error
}

// Worker publishes order-created events to the message broker. Publishing
// is best-effort: a full buffer or a broker failure never affects the
// order-creation response.
type Worker struct {
	publisher publisher
	queueName string
	buffer    chan order.Order
	stopCh    chan struct{}
}

// NewWorker creates a new order events worker.
func NewWorker(publisher publisher) *Worker {
	queueName := viper.GetString("rabbitmq.events.queue_name")
	if queueName == "" {
		queueName = "order-created"
	}

	bufferSize := viper.GetInt("rabbitmq.events.buffer_size")
	if bufferSize == 0 {
		bufferSize = 100
	}

	return &Worker{
		publisher: publisher,
		queueName: queueName,
		buffer:    make(chan order.Order, bufferSize),
		stopCh:    make(chan struct{}),
	}
}

// Enqueue hands an order to the worker without blocking. Orders are
// dropped when the buffer is full.
func (w *Worker) Enqueue(o order.Order) {
	select {
	case w.buffer <- o:
	default:
		slog.Warn("Order events buffer full, dropping event", "order_id", o.ID)
	}
}

// Start begins publishing buffered events.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Order events worker started", "queue", w.queueName)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Order events worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Order events worker stopped")

			return
		case o := <-w.buffer:
			w.publish(o)
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}

// publish serializes and sends a single order-created event.
func (w *Worker) publish(o order.Order) {
	payload, err := json.Marshal(o)
	if err != nil {
		slog.Error("Failed to marshal order event", "order_id", o.ID, "error", err)

		return
	}

	if err := w.publisher.Publish(w.queueName, "application/json", payload); err != nil {
		slog.Error("Failed to publish order event", "order_id", o.ID, "error", err)

		return
	}

	slog.Info("Published order event", "order_id", o.ID)
}
