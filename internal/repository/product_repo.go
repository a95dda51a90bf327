package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *ProductRepo) ByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", strings.TrimSpace(id)).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) ByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *ProductRepo) All(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

func (r *ProductRepo) ByCategoryEncoded(ctx context.Context, encoded string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Where("main_category_encoded = ?", encoded).Find(&out).Error
	return out, err
}

func (r *ProductRepo) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+strings.TrimSpace(query)+"%").
		Order("num_ratings DESC").Find(&out).Error
	return out, err
}

func (r *ProductRepo) HighestRated(ctx context.Context, limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Order("average_rating DESC, num_ratings DESC").
		Limit(limit).Find(&out).Error
	return out, err
}

func (r *ProductRepo) Trending(ctx context.Context, page, perPage int) ([]domain.Product, int64, error) {
	if perPage <= 0 {
		perPage = 5
	}
	if page < 1 {
		page = 1
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Order("average_rating DESC, num_ratings DESC").
		Limit(perPage).Offset((page - 1) * perPage).Find(&out).Error
	return out, total, err
}

func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Distinct("main_category").Pluck("main_category", &out).Error
	return out, err
}
