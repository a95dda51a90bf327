package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

type MethodRepo struct{ db *gorm.DB }

func NewMethodRepo(db *gorm.DB) *MethodRepo {
	return &MethodRepo{db: db}
}

func (r *MethodRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.PaymentMethod{}, &domain.ShippingMethod{})
}

func (r *MethodRepo) PaymentByID(ctx context.Context, id uint) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MethodRepo) ShippingByID(ctx context.Context, id uint) (*domain.ShippingMethod, error) {
	var m domain.ShippingMethod
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MethodRepo) Payments(ctx context.Context) ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

func (r *MethodRepo) Shippings(ctx context.Context) ([]domain.ShippingMethod, error) {
	var out []domain.ShippingMethod
	err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}
