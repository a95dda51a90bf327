package domain

import (
	"strings"
	"time"
)

type OrderStatus int

const (
	StatusPending OrderStatus = iota + 1
	StatusProcessing
	StatusShipped
	StatusDelivered
	StatusCancelled
	StatusReturned
)

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	case StatusReturned:
		return "Returned"
	}
	return "Unknown"
}

func (s OrderStatus) Valid() bool {
	return s >= StatusPending && s <= StatusReturned
}

// ParseOrderStatus resolves a status by its display name, case-insensitively.
func ParseOrderStatus(name string) (OrderStatus, bool) {
	for st := StatusPending; st <= StatusReturned; st++ {
		if strings.EqualFold(st.String(), name) {
			return st, true
		}
	}
	return 0, false
}

// Order is the immutable header of a placed order; only Status moves after
// creation. OrderTotal is computed once at creation and never recomputed.
type Order struct {
	ID               uint        `gorm:"primaryKey" json:"order_id"`
	UserID           uint        `gorm:"index" json:"user_id"`
	OrderDate        time.Time   `gorm:"index" json:"order_date"`
	OrderTotal       float64     `gorm:"type:numeric(10,2)" json:"order_total"`
	PaymentMethodID  uint        `json:"payment_method_id"`
	ShippingMethodID uint        `json:"shipping_method_id"`
	Status           OrderStatus `gorm:"column:order_status_id;index" json:"order_status_id"`
	CreatedAt        time.Time   `json:"-"`
	UpdatedAt        time.Time   `json:"-"`
}

// OrderLine carries its own price snapshot, decoupled from the product's
// current price.
type OrderLine struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID string  `gorm:"index" json:"product_id"`
	Qty       int     `json:"qty"`
	Price     float64 `gorm:"type:numeric(10,2)" json:"price"`
}

// UserCancellable reports whether the order's owner may still cancel it.
// Cancellation is the only guarded transition; administrative callers may
// set any known status.
func (o *Order) UserCancellable() bool {
	return o.Status == StatusPending
}
