package notifier

import (
	"context"
	"fmt"
	"net/smtp"
)

// Email delivers over a plain SMTP relay.
type Email struct {
	host string
	port int
	from string
}

func NewEmail(host string, port int, from string) *Email {
	return &Email{host: host, port: port, from: from}
}

func (e *Email) Notify(_ context.Context, m Message) error {
	if m.To == "" {
		return fmt.Errorf("email notify: empty recipient")
	}
	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", e.from, m.To, m.Subject, m.Body)
	if err := smtp.SendMail(addr, nil, e.from, []string{m.To}, []byte(msg)); err != nil {
		return fmt.Errorf("email notify: %w", err)
	}
	return nil
}
