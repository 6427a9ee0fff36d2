package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hngpack/packaging-svc/internal/service/models/order"
	"github.com/hngpack/packaging-svc/internal/service/models/orderitem"
	"github.com/hngpack/packaging-svc/internal/worker/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type published struct {
	queueName   string
	contentType string
	body        []byte
}

type stubPublisher struct {
	ch  chan published
	err error
}

func (s *stubPublisher) Publish(queueName string, contentType string, body []byte) error {
	s.ch <- published{queueName: queueName, contentType: contentType, body: body}
	return s.err
}

func TestWorkerPublishesEnqueuedOrders(t *testing.T) {
	pub := &stubPublisher{ch: make(chan published, 1)}
	worker := events.NewWorker(pub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	worker.Enqueue(order.Order{
		ID:           "68b0000000000000000000ff",
		CustomerName: "Ada",
		Items: []orderitem.OrderItem{
			{ProductID: "68b0000000000000000000aa", Quantity: 2},
		},
		TotalAmount: decimal.RequireFromString("25.98"),
	})

	select {
	case msg := <-pub.ch:
		require.Equal(t, "order-created", msg.queueName)
		require.Equal(t, "application/json", msg.contentType)

		var event map[string]any
		require.NoError(t, json.Unmarshal(msg.body, &event))
		require.Equal(t, "68b0000000000000000000ff", event["id"])
	case <-time.After(2 * time.Second):
		t.Fatal("expected an order event to be published")
	}
}

func TestWorkerSurvivesPublishFailure(t *testing.T) {
	pub := &stubPublisher{ch: make(chan published, 2), err: errors.New("channel closed")}
	worker := events.NewWorker(pub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	worker.Enqueue(order.Order{ID: "68b0000000000000000000aa"})
	worker.Enqueue(order.Order{ID: "68b0000000000000000000bb"})

	// Both events reach the publisher even though publishing fails.
	for i := 0; i < 2; i++ {
		select {
		case <-pub.ch:
		case <-time.After(2 * time.Second):
			t.Fatal("expected the worker to keep publishing after a failure")
		}
	}
}

func TestWorkerStop(t *testing.T) {
	pub := &stubPublisher{ch: make(chan published, 1)}
	worker := events.NewWorker(pub)

	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()

	worker.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the worker to stop")
	}
}
