package domain

import "time"

// CartLine holds one (user, product) pair; re-adding a product increments
// Qty instead of creating a second line. Price is snapshotted at add time.
type CartLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_cart_user_product,unique" json:"user_id"`
	ProductID string    `gorm:"index:idx_cart_user_product,unique" json:"product_id"`
	Qty       int       `json:"quantity"`
	Price     float64   `gorm:"type:numeric(10,2)" json:"price"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Product Product `json:"product"`
}
