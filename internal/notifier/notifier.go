package notifier

import (
	"context"
	"log"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

// Console logs notifications instead of delivering them. Default in dev,
// where no SMTP relay is configured.
type Console struct{}

func (Console) Notify(_ context.Context, m Message) error {
	log.Printf("[notify] to=%s subject=%q", m.To, m.Subject)
	log.Printf("[notify] %s", m.Body)
	return nil
}
