package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

func TestSetUserStatusGuardsAdmins(t *testing.T) {
	users := newFakeUserStore(
		&domain.User{ID: 1, Email: "root@example.com", Role: domain.RoleAdmin, Status: domain.UserActive},
		&domain.User{ID: 2, Email: "bob@example.com", Role: domain.RoleUser, Status: domain.UserActive},
	)
	svc := NewAdminSvc(&fakeReportStore{}, users, newFakeMethodStore())
	ctx := context.Background()

	err := svc.SetUserStatus(ctx, 1, domain.UserLocked)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	require.NoError(t, svc.SetUserStatus(ctx, 2, domain.UserLocked))
	u, _ := users.ByID(ctx, 2)
	assert.Equal(t, domain.UserLocked, u.Status)

	err = svc.SetUserStatus(ctx, 2, domain.UserStatus("frozen"))
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestBulkSetUserStatusSkipsAdmins(t *testing.T) {
	users := newFakeUserStore(
		&domain.User{ID: 1, Email: "root@example.com", Role: domain.RoleAdmin, Status: domain.UserActive},
		&domain.User{ID: 2, Email: "bob@example.com", Role: domain.RoleUser, Status: domain.UserActive},
		&domain.User{ID: 3, Email: "carol@example.com", Role: domain.RoleUser, Status: domain.UserActive},
	)
	svc := NewAdminSvc(&fakeReportStore{}, users, newFakeMethodStore())

	res, err := svc.BulkSetUserStatus(context.Background(), []uint{1, 2, 3, 99}, domain.UserDisabled)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 2, res.Skipped)
}

func TestUpdateUserAllowList(t *testing.T) {
	users := newFakeUserStore(&domain.User{
		ID: 2, Name: "Bob", Email: "bob@example.com", Role: domain.RoleUser, Status: domain.UserActive,
	})
	svc := NewAdminSvc(&fakeReportStore{}, users, newFakeMethodStore())

	name := "Robert"
	city := "Hue"
	u, err := svc.UpdateUser(context.Background(), 2, UserUpdate{Name: &name, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Robert", u.Name)
	assert.Equal(t, "Hue", u.City)
	assert.Equal(t, domain.RoleUser, u.Role)

	_, err = svc.UpdateUser(context.Background(), 2, UserUpdate{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.UpdateUser(context.Background(), 99, UserUpdate{Name: &name})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestOrderStatusCounts(t *testing.T) {
	reports := &fakeReportStore{orders: []domain.Order{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusPending},
		{ID: 3, Status: domain.StatusDelivered},
	}}
	svc := NewAdminSvc(reports, newFakeUserStore(), newFakeMethodStore())

	counts, err := svc.OrderStatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Pending)
	assert.Equal(t, int64(1), counts.Delivered)
	assert.Equal(t, int64(0), counts.Returned)
	assert.Equal(t, int64(3), counts.Total)
}

func TestUserOrdersPeriods(t *testing.T) {
	now := time.Now()
	reports := &fakeReportStore{orders: []domain.Order{
		{ID: 1, UserID: 2, OrderDate: now.Add(-time.Hour), OrderTotal: 25.00, Status: domain.StatusPending, PaymentMethodID: 1, ShippingMethodID: 1},
		{ID: 2, UserID: 2, OrderDate: now.AddDate(0, -2, 0), OrderTotal: 40.00, Status: domain.StatusDelivered, PaymentMethodID: 2, ShippingMethodID: 2},
	}}
	users := newFakeUserStore(&domain.User{ID: 2, Email: "bob@example.com", Role: domain.RoleUser})
	svc := NewAdminSvc(reports, users, newFakeMethodStore())
	ctx := context.Background()

	hist, err := svc.UserOrders(ctx, 2, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, hist.TotalOrders)
	assert.Equal(t, 65.00, hist.TotalSpent)
	assert.Equal(t, "COD", hist.Orders[0].PaymentMethod)
	assert.Equal(t, "Standard", hist.Orders[0].ShippingMethod)

	hist, err = svc.UserOrders(ctx, 2, "week", "")
	require.NoError(t, err)
	assert.Equal(t, 1, hist.TotalOrders)

	hist, err = svc.UserOrders(ctx, 2, "", "delivered")
	require.NoError(t, err)
	assert.Equal(t, 1, hist.TotalOrders)

	_, err = svc.UserOrders(ctx, 2, "decade", "")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.UserOrders(ctx, 99, "", "")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestWriteCustomersCSV(t *testing.T) {
	age := 28
	reg := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	reports := &fakeReportStore{users: []domain.User{
		{ID: 1, Name: "Root", Email: "root@example.com", Role: domain.RoleAdmin},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Phone: "0123", Age: &age, City: "Hanoi", Status: domain.UserActive, Role: domain.RoleUser, CreatedAt: reg},
	}}
	svc := NewAdminSvc(reports, newFakeUserStore(), newFakeMethodStore())

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCustomersCSV(context.Background(), &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one customer, admin excluded
	assert.Equal(t, "User ID", rows[0][0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "Bob", rows[1][1])
	assert.Equal(t, "28", rows[1][6])
	assert.Equal(t, "2025-03-01 09:30", rows[1][8])
}
