package events

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	RKOrderCreated       = "order.created"
	RKOrderCancelled     = "order.cancelled"
	RKOrderStatusChanged = "order.status_changed"
	RKUserRegistered     = "user.registered"
	RKPasswordReset      = "user.password_reset_requested"
)

type OrderCreated struct {
	EventID    string  `json:"event_id"`
	OrderID    uint    `json:"order_id"`
	UserID     uint    `json:"user_id"`
	UserEmail  string  `json:"user_email"`
	OrderTotal float64 `json:"order_total"`
	LineCount  int     `json:"line_count"`
}

type OrderCancelled struct {
	EventID   string `json:"event_id"`
	OrderID   uint   `json:"order_id"`
	UserID    uint   `json:"user_id"`
	UserEmail string `json:"user_email"`
}

type OrderStatusChanged struct {
	EventID string `json:"event_id"`
	OrderID uint   `json:"order_id"`
	UserID  uint   `json:"user_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type UserRegistered struct {
	EventID string `json:"event_id"`
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type PasswordResetRequested struct {
	EventID   string `json:"event_id"`
	Email     string `json:"email"`
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}

func NewEventID() string { return uuid.NewString() }

func MustUnmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
