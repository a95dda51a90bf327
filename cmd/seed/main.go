package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/repository"
	"github.com/tuilatri/Amazon-Clone/pkg/config"
	"github.com/tuilatri/Amazon-Clone/pkg/db"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("[seed] %v", err)
	}
	return v
}

// Seeds the method registries, the default admin account and a few demo
// products. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())
	gdb := db.Open(cfg.PGDSN)

	userRepo := repository.NewUserRepo(gdb)
	productRepo := repository.NewProductRepo(gdb)
	orderRepo := repository.NewOrderRepo(gdb)
	cartRepo := repository.NewCartRepo(gdb)
	methodRepo := repository.NewMethodRepo(gdb)
	for _, m := range []interface{ Migrate() error }{userRepo, productRepo, cartRepo, orderRepo, methodRepo} {
		if err := m.Migrate(); err != nil {
			log.Fatalf("[seed] migrate: %v", err)
		}
	}

	seedMethods(gdb)
	seedAdmin(gdb)
	seedProducts(gdb)
	log.Println("[seed] done")
}

func seedMethods(gdb *gorm.DB) {
	payments := []domain.PaymentMethod{
		{ID: 1, Name: "COD"},
		{ID: 2, Name: "Credit Card"},
	}
	shippings := []domain.ShippingMethod{
		{ID: 1, Type: "Standard", Price: 5.00},
		{ID: 2, Type: "Express", Price: 10.00},
		{ID: 3, Type: "Same Day", Price: 20.00},
		{ID: 4, Type: "International", Price: 40.00},
	}
	if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&payments).Error; err != nil {
		log.Fatalf("[seed] payment methods: %v", err)
	}
	if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&shippings).Error; err != nil {
		log.Fatalf("[seed] shipping methods: %v", err)
	}
}

func seedAdmin(gdb *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[seed] SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, skipping admin")
		return
	}
	hash := must(bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost))
	admin := domain.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Status:       domain.UserActive,
		Role:         domain.RoleAdmin,
	}
	if err := gdb.Where("email = ?", email).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("[seed] admin: %v", err)
	}
}

func seedProducts(gdb *gorm.DB) {
	var n int64
	if err := gdb.Model(&domain.Product{}).Count(&n).Error; err != nil {
		log.Fatalf("[seed] count products: %v", err)
	}
	if n > 0 {
		return
	}
	demo := []domain.Product{
		{
			ID:                  uuid.NewString(),
			Name:                "Wireless Noise-Cancelling Headphones",
			MainCategory:        "electronics",
			MainCategoryEncoded: "electronics",
			SubCategory:         "Headphones",
			SubCategoryEncoded:  "headphones",
			AverageRating:       4.5,
			NumRatings:          1280,
			ActualPrice:         199.99,
			DiscountPrice:       149.99,
		},
		{
			ID:                  uuid.NewString(),
			Name:                "Stainless Steel Water Bottle 1L",
			MainCategory:        "home & kitchen",
			MainCategoryEncoded: "home-kitchen",
			SubCategory:         "Drinkware",
			SubCategoryEncoded:  "drinkware",
			AverageRating:       4.2,
			NumRatings:          654,
			ActualPrice:         24.99,
			DiscountPrice:       19.99,
		},
		{
			ID:                  uuid.NewString(),
			Name:                "Running Shoes Lightweight Trainer",
			MainCategory:        "sports & fitness",
			MainCategoryEncoded: "sports-fitness",
			SubCategory:         "Shoes",
			SubCategoryEncoded:  "shoes",
			AverageRating:       4.0,
			NumRatings:          311,
			ActualPrice:         89.99,
			DiscountPrice:       59.99,
		},
	}
	if err := gdb.Create(&demo).Error; err != nil {
		log.Fatalf("[seed] products: %v", err)
	}
}
