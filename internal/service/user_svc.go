package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/events"
)

// UserSvc covers self-service profile reads/updates and the password-reset
// flow. Reset codes live in the database with a TTL so they survive process
// restarts and work across instances.
type UserSvc struct {
	users   UserStore
	pub     Publisher
	codeTTL time.Duration
}

func NewUserSvc(users UserStore, pub Publisher, codeTTL time.Duration) *UserSvc {
	return &UserSvc{users: users, pub: pub, codeTTL: codeTTL}
}

type ProfileView struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Age     *int            `json:"age"`
	Gender  string          `json:"gender"`
	City    string          `json:"city"`
	Address *domain.Address `json:"address"`
}

func (s *UserSvc) Profile(ctx context.Context, email string) (*ProfileView, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal("load user", err)
	}
	view := &ProfileView{Name: u.Name, Email: u.Email, Phone: u.Phone, Age: u.Age, Gender: u.Gender, City: u.City}
	addrs, err := s.users.AddressesFor(ctx, u.ID)
	if err != nil {
		return nil, domain.Internal("load addresses", err)
	}
	if len(addrs) > 0 {
		a := addrs[0].Address
		view.Address = &a
	}
	return view, nil
}

type ProfileUpdate struct {
	Name   string
	Phone  string
	Age    *int
	Gender string
	City   string

	Address domain.Address
}

// UpdateProfile updates the personal fields and upserts the default address.
func (s *UserSvc) UpdateProfile(ctx context.Context, email string, in ProfileUpdate) (*ProfileView, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.Internal("load user", err)
	}
	fields := map[string]any{
		"user_name": in.Name,
		"phone":     in.Phone,
		"gender":    in.Gender,
		"city":      in.City,
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if _, err := s.users.UpdateFields(ctx, u.ID, fields); err != nil {
		return nil, domain.Internal("update user", err)
	}
	addr := in.Address
	if err := s.users.UpsertAddress(ctx, u.ID, &addr); err != nil {
		return nil, domain.Internal("save address", err)
	}
	return s.Profile(ctx, email)
}

// ForgotPassword issues a six-digit reset code with a TTL. The code travels
// to the user over the notification exchange, never in the response.
func (s *UserSvc) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.users.ByEmail(ctx, email); err != nil {
		if isNotFound(err) {
			return domain.NotFound("email is not registered")
		}
		return domain.Internal("load user", err)
	}
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	expires := time.Now().Add(s.codeTTL)
	if err := s.users.SaveResetCode(ctx, &domain.PasswordReset{Email: email, Code: code, ExpiresAt: expires}); err != nil {
		return domain.Internal("save reset code", err)
	}
	_ = s.pub.PublishJSON(ctx, events.RKPasswordReset, events.PasswordResetRequested{
		EventID:   events.NewEventID(),
		Email:     email,
		Code:      code,
		ExpiresAt: expires.Unix(),
	})
	return nil
}

// ResetPassword checks the confirmation pair and the stored, unexpired code,
// then swaps the hash and burns the code.
func (s *UserSvc) ResetPassword(ctx context.Context, email, code, newPassword, confirmPassword string) error {
	if newPassword == "" {
		return domain.Validation("password is required")
	}
	if newPassword != confirmPassword {
		return domain.Validation("passwords do not match")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return domain.NotFound("user not found")
		}
		return domain.Internal("load user", err)
	}
	reset, err := s.users.ResetCode(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return domain.Validation("invalid or expired reset code")
		}
		return domain.Internal("load reset code", err)
	}
	if reset.Code != code || time.Now().After(reset.ExpiresAt) {
		return domain.Validation("invalid or expired reset code")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.Internal("hash password", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, u.ID, string(hash)); err != nil {
		return domain.Internal("update password", err)
	}
	_ = s.users.DeleteResetCode(ctx, email)
	return nil
}
