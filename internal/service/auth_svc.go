package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/events"
	"github.com/tuilatri/Amazon-Clone/pkg/auth"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthSvc struct {
	users  UserStore
	pub    Publisher
	jwtTTL time.Duration
}

func NewAuthSvc(users UserStore, pub Publisher, jwtTTL time.Duration) *AuthSvc {
	return &AuthSvc{users: users, pub: pub, jwtTTL: jwtTTL}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Age      *int
	Gender   string
	City     string
	Role     domain.Role
}

// Register creates an account. Email and phone must both be unused; only the
// self-service roles are accepted.
func (s *AuthSvc) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Email == "" || !emailRe.MatchString(in.Email) {
		return nil, domain.Validation("a valid email address is required")
	}
	if in.Password == "" {
		return nil, domain.Validation("password is required")
	}
	if in.Role == 0 {
		in.Role = domain.RoleUser
	}
	if in.Role != domain.RoleUser && in.Role != domain.RoleSupplier {
		return nil, domain.Validation("role must be user or supplier")
	}

	if exists, err := s.users.EmailExists(ctx, in.Email); err != nil {
		return nil, domain.Internal("check email", err)
	} else if exists {
		return nil, domain.Conflict("email address already registered")
	}
	if in.Phone != "" {
		if exists, err := s.users.PhoneExists(ctx, in.Phone); err != nil {
			return nil, domain.Internal("check phone", err)
		} else if exists {
			return nil, domain.Conflict("phone number already registered")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internal("hash password", err)
	}
	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Age:          in.Age,
		Gender:       in.Gender,
		City:         in.City,
		Status:       domain.UserActive,
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, domain.Internal("create user", err)
	}

	_ = s.pub.PublishJSON(ctx, events.RKUserRegistered, events.UserRegistered{
		EventID: events.NewEventID(),
		UserID:  u.ID,
		Email:   u.Email,
		Name:    u.Name,
	})
	return u, nil
}

// Login accepts an email address or a phone number, verifies the password,
// gates on account status and stamps last_login_at.
func (s *AuthSvc) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	var (
		u   *domain.User
		err error
	)
	if emailRe.MatchString(identifier) {
		u, err = s.users.ByEmail(ctx, identifier)
	} else {
		u, err = s.users.ByPhone(ctx, identifier)
	}
	if err != nil {
		if isNotFound(err) {
			return nil, "", domain.NotFound("user not found")
		}
		return nil, "", domain.Internal("load user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.Unauthorized("invalid credentials")
	}
	switch u.Status {
	case domain.UserLocked:
		return nil, "", domain.Forbidden("your account has been locked, please contact support")
	case domain.UserDisabled:
		return nil, "", domain.Forbidden("your account has been disabled, please contact support")
	case domain.UserActive:
	default:
		return nil, "", domain.Forbidden("your account is not active, please contact support")
	}

	if err := s.users.TouchLastLogin(ctx, u.ID, time.Now()); err != nil {
		return nil, "", domain.Internal("update last login", err)
	}
	token, err := auth.CreateAccessToken(strconv.FormatUint(uint64(u.ID), 10), u.Role.String(), u.Email, s.jwtTTL)
	if err != nil {
		return nil, "", domain.Internal("sign token", err)
	}
	return u, token, nil
}
