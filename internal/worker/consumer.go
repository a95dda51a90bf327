package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tuilatri/Amazon-Clone/internal/events"
	"github.com/tuilatri/Amazon-Clone/internal/notifier"
)

// Keys lists every routing key the notification worker cares about.
var Keys = []string{
	events.RKOrderCreated,
	events.RKOrderCancelled,
	events.RKOrderStatusChanged,
	events.RKUserRegistered,
	events.RKPasswordReset,
}

type Deliveries interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// Worker drains the notification queue and turns each event into a
// notification. A failed delivery is requeued once by the broker.
type Worker struct {
	consumer Deliveries
	notify   notifier.Notifier
}

func New(consumer Deliveries, notify notifier.Notifier) *Worker {
	return &Worker{consumer: consumer, notify: notify}
}

func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.consumer.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	log.Println("[worker] waiting for events")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if err := w.handle(ctx, d); err != nil {
				log.Printf("[worker] %s failed: %v", d.RoutingKey, err)
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKOrderCreated:
		ev, err := events.MustUnmarshal[events.OrderCreated](d.Body)
		if err != nil {
			return err
		}
		return w.notify.Notify(ctx, notifier.Message{
			To:      ev.UserEmail,
			Subject: fmt.Sprintf("Order #%d confirmed", ev.OrderID),
			Body:    fmt.Sprintf("We received your order of %d item(s), total $%.2f. We will let you know when it ships.", ev.LineCount, ev.OrderTotal),
		})
	case events.RKOrderCancelled:
		ev, err := events.MustUnmarshal[events.OrderCancelled](d.Body)
		if err != nil {
			return err
		}
		return w.notify.Notify(ctx, notifier.Message{
			To:      ev.UserEmail,
			Subject: fmt.Sprintf("Order #%d cancelled", ev.OrderID),
			Body:    "Your order has been cancelled. If you paid online, the refund is on its way.",
		})
	case events.RKOrderStatusChanged:
		ev, err := events.MustUnmarshal[events.OrderStatusChanged](d.Body)
		if err != nil {
			return err
		}
		log.Printf("[worker] order %d: %s -> %s", ev.OrderID, ev.From, ev.To)
		return nil
	case events.RKUserRegistered:
		ev, err := events.MustUnmarshal[events.UserRegistered](d.Body)
		if err != nil {
			return err
		}
		return w.notify.Notify(ctx, notifier.Message{
			To:      ev.Email,
			Subject: "Welcome!",
			Body:    fmt.Sprintf("Hi %s, your account is ready. Happy shopping!", ev.Name),
		})
	case events.RKPasswordReset:
		ev, err := events.MustUnmarshal[events.PasswordResetRequested](d.Body)
		if err != nil {
			return err
		}
		return w.notify.Notify(ctx, notifier.Message{
			To:      ev.Email,
			Subject: "Your password reset code",
			Body:    fmt.Sprintf("Your reset code is %s. It expires at %s.", ev.Code, time.Unix(ev.ExpiresAt, 0).Format(time.RFC1123)),
		})
	}
	log.Printf("[worker] ignoring unknown routing key %s", d.RoutingKey)
	return nil
}
