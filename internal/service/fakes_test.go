package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/repository"
)

// In-memory fakes standing in for the gorm repositories.

type fakeUserStore struct {
	users  map[uint]*domain.User
	resets map[string]*domain.PasswordReset
	addrs  map[uint][]domain.UserAddress
	nextID uint
}

func newFakeUserStore(users ...*domain.User) *fakeUserStore {
	s := &fakeUserStore{
		users:  map[uint]*domain.User{},
		resets: map[string]*domain.PasswordReset{},
		addrs:  map[uint][]domain.UserAddress{},
		nextID: 1,
	}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = s.nextID
		}
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	return nil
}

func (s *fakeUserStore) ByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *fakeUserStore) ByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) ByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.ByEmail(ctx, email)
	return err == nil, nil
}

func (s *fakeUserStore) PhoneExists(ctx context.Context, phone string) (bool, error) {
	_, err := s.ByPhone(ctx, phone)
	return err == nil, nil
}

func (s *fakeUserStore) UpdateFields(_ context.Context, id uint, fields map[string]any) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "user_name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "age":
			age := v.(int)
			u.Age = &age
		case "gender":
			u.Gender = v.(string)
		case "city":
			u.City = v.(string)
		case "status":
			u.Status = v.(domain.UserStatus)
		}
	}
	return u, nil
}

func (s *fakeUserStore) TouchLastLogin(_ context.Context, id uint, at time.Time) error {
	if u, ok := s.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (s *fakeUserStore) UpdatePasswordHash(_ context.Context, id uint, hash string) error {
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (s *fakeUserStore) AddressesFor(_ context.Context, userID uint) ([]domain.UserAddress, error) {
	return s.addrs[userID], nil
}

func (s *fakeUserStore) UpsertAddress(_ context.Context, userID uint, addr *domain.Address) error {
	s.addrs[userID] = []domain.UserAddress{{UserID: userID, AddressID: 1, IsDefault: true, Address: *addr}}
	return nil
}

func (s *fakeUserStore) SaveResetCode(_ context.Context, reset *domain.PasswordReset) error {
	s.resets[reset.Email] = reset
	return nil
}

func (s *fakeUserStore) ResetCode(_ context.Context, email string) (*domain.PasswordReset, error) {
	r, ok := s.resets[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (s *fakeUserStore) DeleteResetCode(_ context.Context, email string) error {
	delete(s.resets, email)
	return nil
}

type fakeProductStore struct {
	products map[string]domain.Product
}

func newFakeProductStore(products ...domain.Product) *fakeProductStore {
	s := &fakeProductStore{products: map[string]domain.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeProductStore) ByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (s *fakeProductStore) ByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) All(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeProductStore) ByCategoryEncoded(ctx context.Context, encoded string) ([]domain.Product, error) {
	all, _ := s.All(ctx)
	var out []domain.Product
	for _, p := range all {
		if p.MainCategoryEncoded == encoded {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	return s.All(ctx)
}

func (s *fakeProductStore) HighestRated(ctx context.Context, limit int) ([]domain.Product, error) {
	out, _ := s.All(ctx)
	sort.Slice(out, func(i, j int) bool { return out[i].AverageRating > out[j].AverageRating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeProductStore) Trending(ctx context.Context, page, perPage int) ([]domain.Product, int64, error) {
	out, _ := s.HighestRated(ctx, len(s.products))
	return out, int64(len(s.products)), nil
}

func (s *fakeProductStore) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if !seen[p.MainCategory] {
			seen[p.MainCategory] = true
			out = append(out, p.MainCategory)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeCartStore struct {
	lines map[uint]map[string]*domain.CartLine
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{lines: map[uint]map[string]*domain.CartLine{}}
}

func (s *fakeCartStore) Upsert(_ context.Context, userID uint, productID string, qty int, price float64) error {
	if s.lines[userID] == nil {
		s.lines[userID] = map[string]*domain.CartLine{}
	}
	if l, ok := s.lines[userID][productID]; ok {
		l.Qty += qty
		return nil
	}
	s.lines[userID][productID] = &domain.CartLine{UserID: userID, ProductID: productID, Qty: qty, Price: price}
	return nil
}

func (s *fakeCartStore) Line(_ context.Context, userID uint, productID string) (*domain.CartLine, error) {
	if l, ok := s.lines[userID][productID]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeCartStore) Lines(_ context.Context, userID uint) ([]domain.CartLine, error) {
	var out []domain.CartLine
	for _, l := range s.lines[userID] {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (s *fakeCartStore) SetQty(_ context.Context, userID uint, productID string, qty int) error {
	l, ok := s.lines[userID][productID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Qty = qty
	return nil
}

func (s *fakeCartStore) Remove(_ context.Context, userID uint, productID string) error {
	if _, ok := s.lines[userID][productID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.lines[userID], productID)
	return nil
}

func (s *fakeCartStore) Clear(_ context.Context, userID uint) error {
	delete(s.lines, userID)
	return nil
}

type fakeOrderStore struct {
	carts  *fakeCartStore
	orders map[uint]*domain.Order
	lines  map[uint][]domain.OrderLine
	nextID uint
}

func newFakeOrderStore(carts *fakeCartStore) *fakeOrderStore {
	return &fakeOrderStore{
		carts:  carts,
		orders: map[uint]*domain.Order{},
		lines:  map[uint][]domain.OrderLine{},
		nextID: 1,
	}
}

func (s *fakeOrderStore) CreatePlaced(ctx context.Context, o *domain.Order, lines []domain.OrderLine, clearProductIDs []string) error {
	o.ID = s.nextID
	s.nextID++
	s.orders[o.ID] = o
	for i := range lines {
		lines[i].OrderID = o.ID
	}
	s.lines[o.ID] = lines
	if s.carts != nil {
		for _, pid := range clearProductIDs {
			_ = s.carts.Remove(ctx, o.UserID, pid)
		}
	}
	return nil
}

func (s *fakeOrderStore) ByID(_ context.Context, id uint) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (s *fakeOrderStore) LinesByOrder(_ context.Context, orderID uint) ([]domain.OrderLine, error) {
	return s.lines[orderID], nil
}

func (s *fakeOrderStore) ListForUser(_ context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *fakeOrderStore) UpdateStatus(_ context.Context, id uint, to domain.OrderStatus) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	o.Status = to
	return o, nil
}

type fakeMethodStore struct {
	payments  map[uint]domain.PaymentMethod
	shippings map[uint]domain.ShippingMethod
}

func newFakeMethodStore() *fakeMethodStore {
	return &fakeMethodStore{
		payments: map[uint]domain.PaymentMethod{
			1: {ID: 1, Name: "COD"},
			2: {ID: 2, Name: "Credit Card"},
		},
		shippings: map[uint]domain.ShippingMethod{
			1: {ID: 1, Type: "Standard", Price: 5.00},
			2: {ID: 2, Type: "Express", Price: 10.00},
			3: {ID: 3, Type: "Same Day", Price: 20.00},
			4: {ID: 4, Type: "International", Price: 40.00},
		},
	}
}

func (s *fakeMethodStore) PaymentByID(_ context.Context, id uint) (*domain.PaymentMethod, error) {
	m, ok := s.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (s *fakeMethodStore) ShippingByID(_ context.Context, id uint) (*domain.ShippingMethod, error) {
	m, ok := s.shippings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (s *fakeMethodStore) Payments(_ context.Context) ([]domain.PaymentMethod, error) {
	out := []domain.PaymentMethod{s.payments[1], s.payments[2]}
	return out, nil
}

func (s *fakeMethodStore) Shippings(_ context.Context) ([]domain.ShippingMethod, error) {
	out := []domain.ShippingMethod{s.shippings[1], s.shippings[2], s.shippings[3], s.shippings[4]}
	return out, nil
}

type fakeReportStore struct {
	orders []domain.Order
	users  []domain.User
}

func (s *fakeReportStore) Stats(_ context.Context, _ time.Time) (*repository.DashboardStats, error) {
	return &repository.DashboardStats{}, nil
}

func (s *fakeReportStore) StatusCounts(_ context.Context) (map[domain.OrderStatus]int64, error) {
	out := map[domain.OrderStatus]int64{}
	for st := domain.StatusPending; st <= domain.StatusReturned; st++ {
		out[st] = 0
	}
	for _, o := range s.orders {
		out[o.Status]++
	}
	return out, nil
}

func (s *fakeReportStore) Orders(_ context.Context, _ repository.OrderFilter) ([]domain.Order, int64, error) {
	return s.orders, int64(len(s.orders)), nil
}

func (s *fakeReportStore) Users(_ context.Context, _ repository.UserFilter) ([]domain.User, int64, error) {
	return s.users, int64(len(s.users)), nil
}

func (s *fakeReportStore) UserOrders(_ context.Context, userID uint, since time.Time, status domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		if !since.IsZero() && o.OrderDate.Before(since) {
			continue
		}
		if status > 0 && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *fakeReportStore) Customers(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range s.users {
		if u.Role == domain.RoleUser {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakePublisher records every published event.
type fakePublisher struct {
	keys     []string
	payloads []any
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, v)
	return nil
}
