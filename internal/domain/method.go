package domain

// PaymentMethod and ShippingMethod are small static registries seeded
// out-of-band; orders reference them by id.

type PaymentMethod struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}

type ShippingMethod struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Type  string  `gorm:"uniqueIndex" json:"type"`
	Price float64 `gorm:"type:numeric(10,2)" json:"price"`
}
