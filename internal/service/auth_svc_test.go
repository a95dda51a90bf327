package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/events"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := newFakeUserStore()
	pub := &fakePublisher{}
	svc := NewAuthSvc(users, pub, time.Hour)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Phone:    "0123456789",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Equal(t, domain.UserActive, u.Status)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.Contains(t, pub.keys, events.RKUserRegistered)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore(&domain.User{ID: 1, Email: "alice@example.com"})
	svc := NewAuthSvc(users, &fakePublisher{}, time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Alice II", Email: "alice@example.com", Password: "pw",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestRegisterDuplicatePhone(t *testing.T) {
	users := newFakeUserStore(&domain.User{ID: 1, Email: "a@example.com", Phone: "0123456789"})
	svc := NewAuthSvc(users, &fakePublisher{}, time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "B", Email: "b@example.com", Phone: "0123456789", Password: "pw",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestRegisterRejectsPrivilegedRoles(t *testing.T) {
	svc := NewAuthSvc(newFakeUserStore(), &fakePublisher{}, time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Eve", Email: "eve@example.com", Password: "pw", Role: domain.RoleAdmin,
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc := NewAuthSvc(newFakeUserStore(), &fakePublisher{}, time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "X", Email: "not-an-email", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestLoginWithEmailAndPhone(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash := hashOf(t, "s3cret")
	users := newFakeUserStore(&domain.User{
		ID: 1, Email: "alice@example.com", Phone: "0123456789",
		PasswordHash: hash, Status: domain.UserActive, Role: domain.RoleUser,
	})
	svc := NewAuthSvc(users, &fakePublisher{}, time.Hour)

	u, token, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, u.LastLoginAt)

	_, token, err = svc.Login(context.Background(), "0123456789", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserStore(&domain.User{
		ID: 1, Email: "alice@example.com", PasswordHash: hashOf(t, "s3cret"),
		Status: domain.UserActive, Role: domain.RoleUser,
	})
	svc := NewAuthSvc(users, &fakePublisher{}, time.Hour)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestLoginStatusGates(t *testing.T) {
	hash := hashOf(t, "pw")
	for _, status := range []domain.UserStatus{domain.UserLocked, domain.UserDisabled} {
		users := newFakeUserStore(&domain.User{
			ID: 1, Email: "alice@example.com", PasswordHash: hash,
			Status: status, Role: domain.RoleUser,
		})
		svc := NewAuthSvc(users, &fakePublisher{}, time.Hour)

		_, _, err := svc.Login(context.Background(), "alice@example.com", "pw")
		require.Error(t, err, status)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err), status)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthSvc(newFakeUserStore(), &fakePublisher{}, time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
