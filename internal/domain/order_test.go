package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusRoundTrip(t *testing.T) {
	for st := StatusPending; st <= StatusReturned; st++ {
		got, ok := ParseOrderStatus(st.String())
		assert.True(t, ok, st.String())
		assert.Equal(t, st, got)
	}
}

func TestParseOrderStatusCaseInsensitive(t *testing.T) {
	got, ok := ParseOrderStatus("cancelled")
	assert.True(t, ok)
	assert.Equal(t, StatusCancelled, got)

	got, ok = ParseOrderStatus("SHIPPED")
	assert.True(t, ok)
	assert.Equal(t, StatusShipped, got)

	_, ok = ParseOrderStatus("refunded")
	assert.False(t, ok)
}

func TestOrderStatusValid(t *testing.T) {
	assert.False(t, OrderStatus(0).Valid())
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusReturned.Valid())
	assert.False(t, OrderStatus(7).Valid())
	assert.Equal(t, "Unknown", OrderStatus(7).String())
}

func TestUserCancellable(t *testing.T) {
	assert.True(t, (&Order{Status: StatusPending}).UserCancellable())
	for _, st := range []OrderStatus{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned} {
		assert.False(t, (&Order{Status: st}).UserCancellable(), st.String())
	}
}
