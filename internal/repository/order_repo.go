package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderLine{})
}

// CreatePlaced persists the order header, its lines and the cart cleanup as
// one transaction: if any step fails nothing is visible afterwards. Cart
// lines for products outside the order are left untouched.
func (r *OrderRepo) CreatePlaced(ctx context.Context, o *domain.Order, lines []domain.OrderLine, clearProductIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = o.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		if len(clearProductIDs) > 0 {
			if err := tx.Where("user_id = ? AND product_id IN ?", o.UserID, clearProductIDs).
				Delete(&domain.CartLine{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderRepo) ByID(ctx context.Context, id uint) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) LinesByOrder(ctx context.Context, orderID uint) ([]domain.OrderLine, error) {
	var out []domain.OrderLine
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *OrderRepo) ListForUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("order_date DESC, id DESC").Find(&out).Error
	return out, err
}

// UpdateStatus flips the status inside a transaction, locking the row so a
// concurrent transition reads the committed state.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint, to domain.OrderStatus) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, "id = ?", id).Error; err != nil {
			return err
		}
		o.Status = to
		return tx.Save(&o).Error
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}
