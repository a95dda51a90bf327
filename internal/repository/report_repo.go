package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

// ReportRepo is the read side for the admin dashboard. It only consumes the
// persisted order/user tables and never writes.
type ReportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

type DashboardStats struct {
	TotalCustomers       int64   `json:"total_customers"`
	TotalOrders          int64   `json:"total_orders"`
	OrdersToday          int64   `json:"orders_today"`
	TotalRevenue         float64 `json:"total_revenue"`
	RevenueToday         float64 `json:"revenue_today"`
	RevenueThisWeek      float64 `json:"revenue_this_week"`
	RevenueThisMonth     float64 `json:"revenue_this_month"`
	NewCustomersToday    int64   `json:"new_customers_today"`
	NewCustomersThisWeek int64   `json:"new_customers_this_week"`
	ActiveUsersToday     int64   `json:"active_users_today"`
	UsersOrderedToday    int64   `json:"users_ordered_today"`
}

// Stats computes the dashboard aggregates. Revenue counts Delivered orders
// only; customer counts cover the plain User role.
func (r *ReportRepo) Stats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	db := r.db.WithContext(ctx)
	var s DashboardStats

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Monday of the current week
	weekday := (int(now.Weekday()) + 6) % 7
	startOfWeek := today.AddDate(0, 0, -weekday)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleUser).Count(&s.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Order{}).Count(&s.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Order{}).Where("order_date >= ?", today).Count(&s.OrdersToday).Error; err != nil {
		return nil, err
	}

	revenue := func(since *time.Time) (float64, error) {
		var total float64
		q := db.Model(&domain.Order{}).Where("order_status_id = ?", domain.StatusDelivered)
		if since != nil {
			q = q.Where("order_date >= ?", *since)
		}
		err := q.Select("COALESCE(SUM(order_total), 0)").Scan(&total).Error
		return total, err
	}
	var err error
	if s.TotalRevenue, err = revenue(nil); err != nil {
		return nil, err
	}
	if s.RevenueToday, err = revenue(&today); err != nil {
		return nil, err
	}
	if s.RevenueThisWeek, err = revenue(&startOfWeek); err != nil {
		return nil, err
	}
	if s.RevenueThisMonth, err = revenue(&startOfMonth); err != nil {
		return nil, err
	}

	if err := db.Model(&domain.User{}).
		Where("role = ? AND created_at >= ?", domain.RoleUser, today).
		Count(&s.NewCustomersToday).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.User{}).
		Where("role = ? AND created_at >= ?", domain.RoleUser, startOfWeek).
		Count(&s.NewCustomersThisWeek).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.User{}).
		Where("role = ? AND last_login_at >= ?", domain.RoleUser, today).
		Count(&s.ActiveUsersToday).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Order{}).
		Where("order_date >= ?", today).
		Distinct("user_id").Count(&s.UsersOrderedToday).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// StatusCounts groups orders by status; every known status is present in the
// result even when its count is zero.
func (r *ReportRepo) StatusCounts(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	rows := []struct {
		OrderStatusID domain.OrderStatus
		N             int64
	}{}
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("order_status_id, COUNT(id) AS n").
		Group("order_status_id").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[domain.OrderStatus]int64, 6)
	for st := domain.StatusPending; st <= domain.StatusReturned; st++ {
		out[st] = 0
	}
	for _, row := range rows {
		if row.OrderStatusID.Valid() {
			out[row.OrderStatusID] = row.N
		}
	}
	return out, nil
}

type OrderFilter struct {
	Page    int
	PerPage int
	Search  string // order id, user id, or user email fragment
	Status  domain.OrderStatus
}

func (r *ReportRepo) Orders(ctx context.Context, f OrderFilter) ([]domain.Order, int64, error) {
	if f.PerPage <= 0 {
		f.PerPage = 10
	}
	if f.Page < 1 {
		f.Page = 1
	}
	qb := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.Status > 0 {
		qb = qb.Where("order_status_id = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			qb = qb.Where("id = ? OR user_id = ?", n, n)
		} else {
			sub := r.db.Model(&domain.User{}).Select("id").Where("email ILIKE ?", "%"+s+"%")
			qb = qb.Where("user_id IN (?)", sub)
		}
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Order
	err := qb.Order("id DESC").Limit(f.PerPage).Offset((f.Page - 1) * f.PerPage).Find(&out).Error
	return out, total, err
}

type UserFilter struct {
	Page        int
	PerPage     int
	NameSearch  string
	EmailSearch string
	PhoneSearch string
	Status      domain.UserStatus
	Role        domain.Role
	RegisteredFrom, RegisteredTo time.Time
	LastActiveFrom, LastActiveTo time.Time
	SortBy    string // user_id | user_name | email_address | created_at | last_login_at
	SortOrder string // asc | desc
}

var userSortColumns = map[string]string{
	"user_id":       "id",
	"user_name":     "user_name",
	"email_address": "email",
	"created_at":    "created_at",
	"last_login_at": "last_login_at",
}

func (r *ReportRepo) Users(ctx context.Context, f UserFilter) ([]domain.User, int64, error) {
	if f.PerPage <= 0 {
		f.PerPage = 20
	}
	if f.Page < 1 {
		f.Page = 1
	}
	qb := r.db.WithContext(ctx).Model(&domain.User{})
	if f.Role > 0 {
		qb = qb.Where("role = ?", f.Role)
	}
	if f.Status != "" {
		qb = qb.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.NameSearch); s != "" {
		qb = qb.Where("user_name ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(f.EmailSearch); s != "" {
		qb = qb.Where("email ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(f.PhoneSearch); s != "" {
		qb = qb.Where("phone ILIKE ?", "%"+s+"%")
	}
	if !f.RegisteredFrom.IsZero() {
		qb = qb.Where("created_at >= ?", f.RegisteredFrom)
	}
	if !f.RegisteredTo.IsZero() {
		qb = qb.Where("created_at < ?", f.RegisteredTo.AddDate(0, 0, 1))
	}
	if !f.LastActiveFrom.IsZero() {
		qb = qb.Where("last_login_at >= ?", f.LastActiveFrom)
	}
	if !f.LastActiveTo.IsZero() {
		qb = qb.Where("last_login_at < ?", f.LastActiveTo.AddDate(0, 0, 1))
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := userSortColumns[f.SortBy]
	if !ok {
		col = "id"
	}
	dir := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		dir = "ASC"
	}
	var out []domain.User
	err := qb.Order(col + " " + dir + " NULLS LAST").
		Limit(f.PerPage).Offset((f.Page - 1) * f.PerPage).Find(&out).Error
	return out, total, err
}

// UserOrders returns a user's orders, newest first, optionally restricted to
// a trailing period and/or a status.
func (r *ReportRepo) UserOrders(ctx context.Context, userID uint, since time.Time, status domain.OrderStatus) ([]domain.Order, error) {
	qb := r.db.WithContext(ctx).Model(&domain.Order{}).Where("user_id = ?", userID)
	if !since.IsZero() {
		qb = qb.Where("order_date >= ?", since)
	}
	if status > 0 {
		qb = qb.Where("order_status_id = ?", status)
	}
	var out []domain.Order
	err := qb.Order("order_date DESC, id DESC").Find(&out).Error
	return out, err
}

// Customers returns every plain-role user, newest first, for the CSV export.
func (r *ReportRepo) Customers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := r.db.WithContext(ctx).
		Where("role = ?", domain.RoleUser).Order("id DESC").Find(&out).Error
	return out, err
}
