package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/repository"
)

// Store interfaces cover what the services need from the repositories; the
// gorm-backed repository types satisfy them, tests use in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByID(ctx context.Context, id uint) (*domain.User, error)
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByPhone(ctx context.Context, phone string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	AddressesFor(ctx context.Context, userID uint) ([]domain.UserAddress, error)
	UpsertAddress(ctx context.Context, userID uint, addr *domain.Address) error
	SaveResetCode(ctx context.Context, reset *domain.PasswordReset) error
	ResetCode(ctx context.Context, email string) (*domain.PasswordReset, error)
	DeleteResetCode(ctx context.Context, email string) error
}

type ProductStore interface {
	ByID(ctx context.Context, id string) (*domain.Product, error)
	ByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	All(ctx context.Context) ([]domain.Product, error)
	ByCategoryEncoded(ctx context.Context, encoded string) ([]domain.Product, error)
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)
	HighestRated(ctx context.Context, limit int) ([]domain.Product, error)
	Trending(ctx context.Context, page, perPage int) ([]domain.Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
}

type CartStore interface {
	Upsert(ctx context.Context, userID uint, productID string, qty int, price float64) error
	Line(ctx context.Context, userID uint, productID string) (*domain.CartLine, error)
	Lines(ctx context.Context, userID uint) ([]domain.CartLine, error)
	SetQty(ctx context.Context, userID uint, productID string, qty int) error
	Remove(ctx context.Context, userID uint, productID string) error
	Clear(ctx context.Context, userID uint) error
}

type OrderStore interface {
	CreatePlaced(ctx context.Context, o *domain.Order, lines []domain.OrderLine, clearProductIDs []string) error
	ByID(ctx context.Context, id uint) (*domain.Order, error)
	LinesByOrder(ctx context.Context, orderID uint) ([]domain.OrderLine, error)
	ListForUser(ctx context.Context, userID uint) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, to domain.OrderStatus) (*domain.Order, error)
}

type MethodStore interface {
	PaymentByID(ctx context.Context, id uint) (*domain.PaymentMethod, error)
	ShippingByID(ctx context.Context, id uint) (*domain.ShippingMethod, error)
	Payments(ctx context.Context) ([]domain.PaymentMethod, error)
	Shippings(ctx context.Context) ([]domain.ShippingMethod, error)
}

type ReportStore interface {
	Stats(ctx context.Context, now time.Time) (*repository.DashboardStats, error)
	StatusCounts(ctx context.Context) (map[domain.OrderStatus]int64, error)
	Orders(ctx context.Context, f repository.OrderFilter) ([]domain.Order, int64, error)
	Users(ctx context.Context, f repository.UserFilter) ([]domain.User, int64, error)
	UserOrders(ctx context.Context, userID uint, since time.Time, status domain.OrderStatus) ([]domain.Order, error)
	Customers(ctx context.Context) ([]domain.User, error)
}

// Publisher is satisfied by pkg/mq.Publisher; lifecycle events are published
// best-effort and never fail the request.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
