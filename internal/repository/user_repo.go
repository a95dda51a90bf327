package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Migrate() error {
	return r.db.AutoMigrate(
		&domain.User{},
		&domain.Address{},
		&domain.UserAddress{},
		&domain.PasswordReset{},
	)
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepo) ByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", strings.ToLower(email)).Count(&n).Error
	return n > 0, err
}

func (r *UserRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("phone = ?", phone).Count(&n).Error
	return n > 0, err
}

func (r *UserRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.User, error) {
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.ByID(ctx, id)
}

func (r *UserRepo) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("password_hash", hash).Error
}

// Addresses

func (r *UserRepo) AddressesFor(ctx context.Context, userID uint) ([]domain.UserAddress, error) {
	var out []domain.UserAddress
	err := r.db.WithContext(ctx).Preload("Address").
		Where("user_id = ?", userID).Order("is_default DESC").Find(&out).Error
	return out, err
}

// UpsertAddress creates and links an address when the user has none, and
// updates the default one otherwise.
func (r *UserRepo) UpsertAddress(ctx context.Context, userID uint, addr *domain.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link domain.UserAddress
		err := tx.Where("user_id = ?", userID).Order("is_default DESC").First(&link).Error
		if err == nil {
			addr.ID = link.AddressID
			return tx.Save(addr).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := tx.Create(addr).Error; err != nil {
			return err
		}
		return tx.Create(&domain.UserAddress{UserID: userID, AddressID: addr.ID, IsDefault: true}).Error
	})
}

// Password resets

func (r *UserRepo) SaveResetCode(ctx context.Context, reset *domain.PasswordReset) error {
	return r.db.WithContext(ctx).Save(reset).Error
}

func (r *UserRepo) ResetCode(ctx context.Context, email string) (*domain.PasswordReset, error) {
	var pr domain.PasswordReset
	if err := r.db.WithContext(ctx).First(&pr, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *UserRepo) DeleteResetCode(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Delete(&domain.PasswordReset{}, "email = ?", strings.ToLower(email)).Error
}
