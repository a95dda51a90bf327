package service

import (
	"context"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

type CartSvc struct {
	carts    CartStore
	users    UserStore
	products ProductStore
}

func NewCartSvc(carts CartStore, users UserStore, products ProductStore) *CartSvc {
	return &CartSvc{carts: carts, users: users, products: products}
}

// Add puts qty units of a product in the user's cart. Re-adding increments
// the existing line; the line price is the product's discounted price at the
// time of the first add.
func (s *CartSvc) Add(ctx context.Context, userID uint, productID string, qty int) error {
	if qty < 1 {
		return domain.Validation("quantity must be at least 1")
	}
	if _, err := s.users.ByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return domain.NotFound("user not found")
		}
		return domain.Internal("load user", err)
	}
	product, err := s.products.ByID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return domain.NotFound("product not found")
		}
		return domain.Internal("load product", err)
	}
	if err := s.carts.Upsert(ctx, userID, product.ID, qty, product.DiscountPrice); err != nil {
		return domain.Internal("add to cart", err)
	}
	return nil
}

func (s *CartSvc) UpdateQty(ctx context.Context, userID uint, productID string, qty int) error {
	if qty < 1 {
		return domain.Validation("quantity must be at least 1")
	}
	if err := s.carts.SetQty(ctx, userID, productID, qty); err != nil {
		if isNotFound(err) {
			return domain.NotFound("cart item not found")
		}
		return domain.Internal("update cart item", err)
	}
	return nil
}

func (s *CartSvc) Remove(ctx context.Context, userID uint, productID string) error {
	if err := s.carts.Remove(ctx, userID, productID); err != nil {
		if isNotFound(err) {
			return domain.NotFound("cart item not found")
		}
		return domain.Internal("remove cart item", err)
	}
	return nil
}

func (s *CartSvc) Clear(ctx context.Context, userID uint) error {
	if err := s.carts.Clear(ctx, userID); err != nil {
		return domain.Internal("clear cart", err)
	}
	return nil
}

type CartView struct {
	Items      []domain.CartLine `json:"cart"`
	TotalPrice float64           `json:"total_price"`
}

func (s *CartSvc) Get(ctx context.Context, userID uint) (*CartView, error) {
	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return nil, domain.Internal("load cart", err)
	}
	var total float64
	for _, l := range lines {
		total += float64(l.Qty) * l.Price
	}
	return &CartView{Items: lines, TotalPrice: total}, nil
}
