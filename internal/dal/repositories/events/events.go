package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/laptopstore/oms/internal/dal/interfaces/ioutboxrepo"
	"github.com/laptopstore/oms/internal/dal/rabbitmq"
	"github.com/laptopstore/oms/internal/service/models/event"
	"github.com/laptopstore/oms/internal/service/models/outbox"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

const queueName = "oms.order.events"

// EventRabbitMQRepository publishes order lifecycle events to RabbitMQ.
// Events that fail to publish are parked in the outbox table and drained
// later by the outbox worker.
type EventRabbitMQRepository struct {
	client     *rabbitmq.Client
	outboxRepo ioutboxrepo.IOutboxRepository
	queue      amqp.Queue
	maxRetries int
}

// NewEventRabbitMQRepository creates a new event repository and declares its queue.
func NewEventRabbitMQRepository(
	client *rabbitmq.Client,
	outboxRepo ioutboxrepo.IOutboxRepository,
) *EventRabbitMQRepository {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       queueName,
		Durable:    true,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		panic(err)
	}

	maxRetries := viper.GetInt("rabbitmq.outbox.max_retries")
	if maxRetries == 0 {
		maxRetries = 5
	}

	return &EventRabbitMQRepository{
		client:     client,
		outboxRepo: outboxRepo,
		queue:      queue,
		maxRetries: maxRetries,
	}
}

// PublishOrderEvents publishes the events concurrently with a small bound.
// A failed publish falls back to the outbox; only an outbox failure is
// returned to the caller.
func (r *EventRabbitMQRepository) PublishOrderEvents(
	ctx context.Context,
	events []event.OrderEvent,
) error {
	publishCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	g, gCtx := errgroup.WithContext(publishCtx)
	g.SetLimit(3)

	for _, ev := range events {
		ev := ev
		g.Go(func() error {
			payload, err := json.Marshal(ev)
			if err != nil {
				return err
			}

			err = r.client.Channel().Publish(
				"",
				r.queue.Name,
				false,
				false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        payload,
				},
			)
			if err == nil {
				return nil
			}

			slog.Warn("Failed to publish order event, parking in outbox",
				"kind", ev.Kind,
				"order_id", ev.OrderID,
				"error", err,
			)

			now := time.Now()

			return r.outboxRepo.Insert(gCtx, outbox.Message{
				QueueName:   r.queue.Name,
				RoutingKey:  r.queue.Name,
				Payload:     payload,
				ContentType: "application/json",
				MaxRetries:  r.maxRetries,
				LastError:   err.Error(),
				CreatedAt:   now,
				UpdatedAt:   now,
				NextRetryAt: now,
			})
		})
	}

	return g.Wait()
}
