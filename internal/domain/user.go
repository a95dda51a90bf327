package domain

import "time"

type Role int

const (
	RoleAdmin    Role = 1
	RoleUser     Role = 2
	RoleSupplier Role = 3
	RoleDelivery Role = 4
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleUser:
		return "User"
	case RoleSupplier:
		return "Supplier"
	case RoleDelivery:
		return "Delivery"
	}
	return "User"
}

func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleDelivery
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserLocked   UserStatus = "locked"
	UserDisabled UserStatus = "disabled"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserLocked, UserDisabled:
		return true
	}
	return false
}

type User struct {
	ID           uint       `gorm:"primaryKey" json:"user_id"`
	Name         string     `gorm:"column:user_name" json:"user_name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email_address"`
	Phone        string     `gorm:"uniqueIndex" json:"phone_number"`
	PasswordHash string     `json:"-"`
	Age          *int       `json:"age,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	City         string     `json:"city,omitempty"`
	Status       UserStatus `gorm:"index;default:active" json:"status"`
	Role         Role       `gorm:"index;default:2" json:"role_id"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

type Address struct {
	ID           uint   `gorm:"primaryKey" json:"address_id"`
	UnitNumber   string `json:"unit_number"`
	StreetNumber string `json:"street_number"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
}

type UserAddress struct {
	UserID    uint `gorm:"primaryKey" json:"user_id"`
	AddressID uint `gorm:"primaryKey" json:"address_id"`
	IsDefault bool `json:"is_default"`

	Address Address `json:"address"`
}

// PasswordReset is the persisted replacement for the original in-process
// email→code dictionary; codes expire and survive restarts.
type PasswordReset struct {
	Email     string    `gorm:"primaryKey"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index"`
}
