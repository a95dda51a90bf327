package service

import (
	"context"
	"time"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/events"
	"github.com/tuilatri/Amazon-Clone/pkg/obs"
)

type OrderSvc struct {
	orders   OrderStore
	users    UserStore
	products ProductStore
	methods  MethodStore
	carts    CartStore
	pub      Publisher
}

func NewOrderSvc(orders OrderStore, users UserStore, products ProductStore, methods MethodStore, carts CartStore, pub Publisher) *OrderSvc {
	return &OrderSvc{orders: orders, users: users, products: products, methods: methods, carts: carts, pub: pub}
}

type OrderItemInput struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrderInput struct {
	UserID           uint
	PaymentMethodID  uint
	ShippingMethodID uint
	Items            []OrderItemInput
}

type OrderReceipt struct {
	OrderID        uint    `json:"order_id"`
	ItemsTotal     float64 `json:"items_total"`
	ShippingCost   float64 `json:"shipping_cost"`
	OrderTotal     float64 `json:"order_total"`
	PaymentMethod  string  `json:"payment_method"`
	ShippingMethod string  `json:"shipping_method"`
}

// Create places an order: header, lines and the matching cart-line deletions
// are committed as one unit. Item prices are taken from the request, not
// re-read from the catalog — the cart snapshots prices at add time.
func (s *OrderSvc) Create(ctx context.Context, in CreateOrderInput) (*OrderReceipt, error) {
	user, err := s.users.ByID(ctx, in.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal("load user", err)
	}
	payment, err := s.methods.PaymentByID(ctx, in.PaymentMethodID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("invalid payment method")
		}
		return nil, domain.Internal("load payment method", err)
	}
	shipping, err := s.methods.ShippingByID(ctx, in.ShippingMethodID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("invalid shipping method")
		}
		return nil, domain.Internal("load shipping method", err)
	}
	if len(in.Items) == 0 {
		return nil, domain.Validation("no items in order")
	}

	var itemsTotal float64
	lines := make([]domain.OrderLine, 0, len(in.Items))
	productIDs := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, domain.Validation("quantity must be at least 1")
		}
		itemsTotal += float64(it.Quantity) * it.Price
		lines = append(lines, domain.OrderLine{ProductID: it.ProductID, Qty: it.Quantity, Price: it.Price})
		productIDs = append(productIDs, it.ProductID)
	}
	orderTotal := itemsTotal + shipping.Price

	order := &domain.Order{
		UserID:           user.ID,
		OrderDate:        time.Now(),
		OrderTotal:       orderTotal,
		PaymentMethodID:  payment.ID,
		ShippingMethodID: shipping.ID,
		Status:           domain.StatusPending,
	}
	if err := s.orders.CreatePlaced(ctx, order, lines, productIDs); err != nil {
		return nil, domain.Internal("failed to create order", err)
	}

	obs.OrdersCreated.Inc()
	_ = s.pub.PublishJSON(ctx, events.RKOrderCreated, events.OrderCreated{
		EventID:    events.NewEventID(),
		OrderID:    order.ID,
		UserID:     user.ID,
		UserEmail:  user.Email,
		OrderTotal: orderTotal,
		LineCount:  len(lines),
	})

	return &OrderReceipt{
		OrderID:        order.ID,
		ItemsTotal:     itemsTotal,
		ShippingCost:   shipping.Price,
		OrderTotal:     orderTotal,
		PaymentMethod:  payment.Name,
		ShippingMethod: shipping.Type,
	}, nil
}

// Cancel is the only user-facing transition: owner only, Pending only.
func (s *OrderSvc) Cancel(ctx context.Context, orderID, userID uint) (*domain.Order, error) {
	order, err := s.orders.ByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("order not found")
		}
		return nil, domain.Internal("load order", err)
	}
	if order.UserID != userID {
		return nil, domain.Forbidden("you are not authorized to cancel this order")
	}
	if !order.UserCancellable() {
		return nil, domain.InvalidState("only Pending orders may be cancelled")
	}
	updated, err := s.orders.UpdateStatus(ctx, orderID, domain.StatusCancelled)
	if err != nil {
		return nil, domain.Internal("cancel order", err)
	}

	obs.OrdersCancelled.Inc()
	email := ""
	if u, uerr := s.users.ByID(ctx, userID); uerr == nil {
		email = u.Email
	}
	_ = s.pub.PublishJSON(ctx, events.RKOrderCancelled, events.OrderCancelled{
		EventID:   events.NewEventID(),
		OrderID:   updated.ID,
		UserID:    userID,
		UserEmail: email,
	})
	return updated, nil
}

// SetStatus is the administrative override: any known status may be set.
func (s *OrderSvc) SetStatus(ctx context.Context, orderID uint, to domain.OrderStatus) (*domain.Order, error) {
	if !to.Valid() {
		return nil, domain.Validation("unknown order status")
	}
	order, err := s.orders.ByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("order not found")
		}
		return nil, domain.Internal("load order", err)
	}
	from := order.Status
	updated, err := s.orders.UpdateStatus(ctx, orderID, to)
	if err != nil {
		return nil, domain.Internal("update order status", err)
	}
	_ = s.pub.PublishJSON(ctx, events.RKOrderStatusChanged, events.OrderStatusChanged{
		EventID: events.NewEventID(),
		OrderID: updated.ID,
		UserID:  updated.UserID,
		From:    from.String(),
		To:      to.String(),
	})
	return updated, nil
}

type OrderLineView struct {
	ProductID    string  `json:"product_id"`
	Qty          int     `json:"qty"`
	Price        float64 `json:"price"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
}

type OrderView struct {
	OrderID          uint            `json:"order_id"`
	UserID           uint            `json:"user_id"`
	OrderDate        time.Time       `json:"order_date"`
	OrderTotal       float64         `json:"order_total"`
	PaymentMethodID  uint            `json:"payment_method_id"`
	ShippingMethodID uint            `json:"shipping_method_id"`
	Status           string          `json:"status"`
	StatusID         int             `json:"status_id"`
	Items            []OrderLineView `json:"items"`
}

// Get projects an order with its lines joined against the catalog for
// display. Unknown products degrade to a placeholder name.
func (s *OrderSvc) Get(ctx context.Context, orderID uint) (*OrderView, error) {
	order, err := s.orders.ByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("order not found")
		}
		return nil, domain.Internal("load order", err)
	}
	return s.project(ctx, order)
}

func (s *OrderSvc) ListForUser(ctx context.Context, userEmail string) ([]OrderView, error) {
	user, err := s.users.ByEmail(ctx, userEmail)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal("load user", err)
	}
	orders, err := s.orders.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, domain.Internal("list orders", err)
	}
	out := make([]OrderView, 0, len(orders))
	for i := range orders {
		v, err := s.project(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *OrderSvc) project(ctx context.Context, order *domain.Order) (*OrderView, error) {
	lines, err := s.orders.LinesByOrder(ctx, order.ID)
	if err != nil {
		return nil, domain.Internal("load order lines", err)
	}
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	byID := map[string]domain.Product{}
	if len(ids) > 0 {
		products, err := s.products.ByIDs(ctx, ids)
		if err != nil {
			return nil, domain.Internal("load products", err)
		}
		for _, p := range products {
			byID[p.ID] = p
		}
	}
	items := make([]OrderLineView, 0, len(lines))
	for _, l := range lines {
		name, image := "Unknown Product", ""
		if p, ok := byID[l.ProductID]; ok {
			name, image = p.Name, p.Image
		}
		items = append(items, OrderLineView{
			ProductID:    l.ProductID,
			Qty:          l.Qty,
			Price:        l.Price,
			ProductName:  name,
			ProductImage: image,
		})
	}
	return &OrderView{
		OrderID:          order.ID,
		UserID:           order.UserID,
		OrderDate:        order.OrderDate,
		OrderTotal:       order.OrderTotal,
		PaymentMethodID:  order.PaymentMethodID,
		ShippingMethodID: order.ShippingMethodID,
		Status:           order.Status.String(),
		StatusID:         int(order.Status),
		Items:            items,
	}, nil
}

type CheckoutView struct {
	Items           []domain.CartLine       `json:"cart_items"`
	ItemsTotal      float64                 `json:"total_price"`
	PaymentMethods  []domain.PaymentMethod  `json:"payment_methods"`
	ShippingMethods []domain.ShippingMethod `json:"shipping_methods"`
}

// CheckoutDisplay gathers the cart plus both method registries for the
// checkout page.
func (s *OrderSvc) CheckoutDisplay(ctx context.Context, userID uint) (*CheckoutView, error) {
	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return nil, domain.Internal("load cart", err)
	}
	if len(lines) == 0 {
		return nil, domain.Validation("cart is empty")
	}
	var total float64
	for _, l := range lines {
		total += float64(l.Qty) * l.Price
	}
	payments, err := s.methods.Payments(ctx)
	if err != nil {
		return nil, domain.Internal("load payment methods", err)
	}
	shippings, err := s.methods.Shippings(ctx)
	if err != nil {
		return nil, domain.Internal("load shipping methods", err)
	}
	return &CheckoutView{Items: lines, ItemsTotal: total, PaymentMethods: payments, ShippingMethods: shippings}, nil
}
