package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/repository"
)

// AdminSvc is the dashboard read side plus the few admin-only user writes.
type AdminSvc struct {
	reports ReportStore
	users   UserStore
	methods MethodStore
}

func NewAdminSvc(reports ReportStore, users UserStore, methods MethodStore) *AdminSvc {
	return &AdminSvc{reports: reports, users: users, methods: methods}
}

func (s *AdminSvc) Stats(ctx context.Context) (*repository.DashboardStats, error) {
	out, err := s.reports.Stats(ctx, time.Now())
	if err != nil {
		return nil, domain.Internal("dashboard stats", err)
	}
	return out, nil
}

type StatusCounts struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
	Returned   int64 `json:"returned"`
	Total      int64 `json:"total"`
}

func (s *AdminSvc) OrderStatusCounts(ctx context.Context) (*StatusCounts, error) {
	counts, err := s.reports.StatusCounts(ctx)
	if err != nil {
		return nil, domain.Internal("status counts", err)
	}
	out := &StatusCounts{
		Pending:    counts[domain.StatusPending],
		Processing: counts[domain.StatusProcessing],
		Shipped:    counts[domain.StatusShipped],
		Delivered:  counts[domain.StatusDelivered],
		Cancelled:  counts[domain.StatusCancelled],
		Returned:   counts[domain.StatusReturned],
	}
	out.Total = out.Pending + out.Processing + out.Shipped + out.Delivered + out.Cancelled + out.Returned
	return out, nil
}

type AdminOrderRow struct {
	OrderID    uint      `json:"order_id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	OrderDate  time.Time `json:"order_date"`
	OrderTotal float64   `json:"order_total"`
	Status     string    `json:"status"`
	StatusID   int       `json:"status_id"`
}

type Page[T any] struct {
	Rows       []T   `json:"rows"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

func totalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func (s *AdminSvc) Orders(ctx context.Context, f repository.OrderFilter) (*Page[AdminOrderRow], error) {
	orders, total, err := s.reports.Orders(ctx, f)
	if err != nil {
		return nil, domain.Internal("list orders", err)
	}
	rows := make([]AdminOrderRow, 0, len(orders))
	for _, o := range orders {
		name := "Unknown"
		if u, uerr := s.users.ByID(ctx, o.UserID); uerr == nil {
			name = u.Name
		}
		rows = append(rows, AdminOrderRow{
			OrderID:    o.ID,
			UserID:     o.UserID,
			UserName:   name,
			OrderDate:  o.OrderDate,
			OrderTotal: o.OrderTotal,
			Status:     o.Status.String(),
			StatusID:   int(o.Status),
		})
	}
	if f.PerPage <= 0 {
		f.PerPage = 10
	}
	if f.Page < 1 {
		f.Page = 1
	}
	return &Page[AdminOrderRow]{Rows: rows, Total: total, Page: f.Page, PerPage: f.PerPage, TotalPages: totalPages(total, f.PerPage)}, nil
}

func (s *AdminSvc) Users(ctx context.Context, f repository.UserFilter) (*Page[domain.User], error) {
	users, total, err := s.reports.Users(ctx, f)
	if err != nil {
		return nil, domain.Internal("list users", err)
	}
	if f.PerPage <= 0 {
		f.PerPage = 20
	}
	if f.Page < 1 {
		f.Page = 1
	}
	return &Page[domain.User]{Rows: users, Total: total, Page: f.Page, PerPage: f.PerPage, TotalPages: totalPages(total, f.PerPage)}, nil
}

type UserDetail struct {
	domain.User
	RoleName  string               `json:"role"`
	Addresses []domain.UserAddress `json:"addresses"`
}

func (s *AdminSvc) UserDetail(ctx context.Context, userID uint) (*UserDetail, error) {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal("load user", err)
	}
	addrs, err := s.users.AddressesFor(ctx, userID)
	if err != nil {
		return nil, domain.Internal("load addresses", err)
	}
	return &UserDetail{User: *u, RoleName: u.Role.String(), Addresses: addrs}, nil
}

// UserUpdate is the explicit allow-list for admin edits: no password, no
// role, no status. Nil fields are left untouched.
type UserUpdate struct {
	Name   *string `json:"user_name"`
	Email  *string `json:"email_address"`
	Phone  *string `json:"phone_number"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
	City   *string `json:"city"`
}

func (s *AdminSvc) UpdateUser(ctx context.Context, userID uint, in UserUpdate) (*domain.User, error) {
	if _, err := s.users.ByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal("load user", err)
	}
	fields := map[string]any{}
	if in.Name != nil {
		fields["user_name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if in.Gender != nil {
		fields["gender"] = *in.Gender
	}
	if in.City != nil {
		fields["city"] = *in.City
	}
	if len(fields) == 0 {
		return nil, domain.Validation("no updatable fields supplied")
	}
	u, err := s.users.UpdateFields(ctx, userID, fields)
	if err != nil {
		return nil, domain.Internal("update user", err)
	}
	return u, nil
}

// SetUserStatus flips one account's status. Admin accounts are immune.
func (s *AdminSvc) SetUserStatus(ctx context.Context, userID uint, status domain.UserStatus) error {
	if !status.Valid() {
		return domain.Validation("status must be active, locked or disabled")
	}
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return domain.NotFound("user not found")
		}
		return domain.Internal("load user", err)
	}
	if u.Role == domain.RoleAdmin {
		return domain.Forbidden("cannot change admin user status")
	}
	if _, err := s.users.UpdateFields(ctx, userID, map[string]any{"status": status}); err != nil {
		return domain.Internal("update status", err)
	}
	return nil
}

type BulkStatusResult struct {
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

// BulkSetUserStatus applies a status change to many accounts, silently
// skipping admins.
func (s *AdminSvc) BulkSetUserStatus(ctx context.Context, userIDs []uint, status domain.UserStatus) (*BulkStatusResult, error) {
	if len(userIDs) == 0 {
		return nil, domain.Validation("user_ids must be a non-empty list")
	}
	if !status.Valid() {
		return nil, domain.Validation("status must be active, locked or disabled")
	}
	res := &BulkStatusResult{}
	for _, id := range userIDs {
		if err := s.SetUserStatus(ctx, id, status); err != nil {
			res.Skipped++
			continue
		}
		res.Updated++
	}
	return res, nil
}

type UserOrderRow struct {
	OrderID        uint      `json:"order_id"`
	OrderDate      time.Time `json:"order_date"`
	OrderTotal     float64   `json:"order_total"`
	Status         string    `json:"status"`
	PaymentMethod  string    `json:"payment_method"`
	ShippingMethod string    `json:"shipping_method"`
}

type UserOrderHistory struct {
	UserID      uint           `json:"user_id"`
	Orders      []UserOrderRow `json:"orders"`
	TotalOrders int            `json:"total_orders"`
	TotalSpent  float64        `json:"total_spent"`
}

// UserOrders lists one user's orders for the admin profile popup; period is
// one of day/week/month/year (empty = all), statusName filters by display
// name.
func (s *AdminSvc) UserOrders(ctx context.Context, userID uint, period, statusName string) (*UserOrderHistory, error) {
	if _, err := s.users.ByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal("load user", err)
	}
	var since time.Time
	now := time.Now()
	switch period {
	case "day":
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, 0, -30)
	case "year":
		since = now.AddDate(-1, 0, 0)
	case "":
	default:
		return nil, domain.Validation("period must be day, week, month or year")
	}
	var status domain.OrderStatus
	if statusName != "" {
		st, ok := domain.ParseOrderStatus(statusName)
		if !ok {
			return nil, domain.Validation("unknown order status")
		}
		status = st
	}
	orders, err := s.reports.UserOrders(ctx, userID, since, status)
	if err != nil {
		return nil, domain.Internal("list user orders", err)
	}
	hist := &UserOrderHistory{UserID: userID, Orders: make([]UserOrderRow, 0, len(orders))}
	for _, o := range orders {
		row := UserOrderRow{
			OrderID:    o.ID,
			OrderDate:  o.OrderDate,
			OrderTotal: o.OrderTotal,
			Status:     o.Status.String(),
		}
		if pm, perr := s.methods.PaymentByID(ctx, o.PaymentMethodID); perr == nil {
			row.PaymentMethod = pm.Name
		}
		if sm, serr := s.methods.ShippingByID(ctx, o.ShippingMethodID); serr == nil {
			row.ShippingMethod = sm.Type
		}
		hist.Orders = append(hist.Orders, row)
		hist.TotalSpent += o.OrderTotal
	}
	hist.TotalOrders = len(hist.Orders)
	return hist, nil
}

// WriteCustomersCSV streams every customer account as CSV.
func (s *AdminSvc) WriteCustomersCSV(ctx context.Context, w io.Writer) error {
	users, err := s.reports.Customers(ctx)
	if err != nil {
		return domain.Internal("list customers", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"User ID", "Username", "Email", "Phone", "Status", "Gender", "Age", "City", "Registered", "Last Active"}); err != nil {
		return domain.Internal("write csv", err)
	}
	for _, u := range users {
		age := ""
		if u.Age != nil {
			age = strconv.Itoa(*u.Age)
		}
		lastActive := ""
		if u.LastLoginAt != nil {
			lastActive = u.LastLoginAt.Format("2006-01-02 15:04")
		}
		row := []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			u.Email,
			u.Phone,
			string(u.Status),
			u.Gender,
			age,
			u.City,
			u.CreatedAt.Format("2006-01-02 15:04"),
			lastActive,
		}
		if err := cw.Write(row); err != nil {
			return domain.Internal("write csv", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return domain.Internal("write csv", err)
	}
	return nil
}
