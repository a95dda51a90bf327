package domain

import "time"

// Product is read-only within the order workflow; rows come from the seeder.
type Product struct {
	ID                  string    `gorm:"primaryKey" json:"product_id"`
	Name                string    `gorm:"index" json:"product_name"`
	MainCategory        string    `gorm:"index" json:"main_category"`
	MainCategoryEncoded string    `gorm:"index" json:"main_category_encoded"`
	SubCategory         string    `json:"sub_category"`
	SubCategoryEncoded  string    `json:"sub_category_encoded"`
	Image               string    `json:"product_image"`
	Link                string    `json:"product_link"`
	AverageRating       float64   `json:"average_rating"`
	NumRatings          int       `json:"no_of_ratings"`
	ActualPrice         float64   `gorm:"type:numeric(10,2)" json:"actual_price_usd"`
	DiscountPrice       float64   `gorm:"type:numeric(10,2)" json:"discount_price_usd"`
	CreatedAt           time.Time `json:"-"`
}
