package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.CartLine{})
}

// Upsert increments the line's quantity when the (user, product) pair already
// exists and creates a snapshot-priced line otherwise.
func (r *CartRepo) Upsert(ctx context.Context, userID uint, productID string, qty int, price float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line domain.CartLine
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = domain.CartLine{UserID: userID, ProductID: productID, Qty: qty, Price: price}
			return tx.Create(&line).Error
		}
		if err != nil {
			return err
		}
		line.Qty += qty
		return tx.Save(&line).Error
	})
}

func (r *CartRepo) Line(ctx context.Context, userID uint, productID string) (*domain.CartLine, error) {
	var line domain.CartLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepo) Lines(ctx context.Context, userID uint) ([]domain.CartLine, error) {
	var out []domain.CartLine
	err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *CartRepo) SetQty(ctx context.Context, userID uint, productID string, qty int) error {
	res := r.db.WithContext(ctx).Model(&domain.CartLine{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("qty", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepo) Remove(ctx context.Context, userID uint, productID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.CartLine{}).Error
}
