package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tuilatri/Amazon-Clone/internal/repository"
	"github.com/tuilatri/Amazon-Clone/internal/service"
	transport "github.com/tuilatri/Amazon-Clone/internal/transport/http"
	"github.com/tuilatri/Amazon-Clone/pkg/config"
	"github.com/tuilatri/Amazon-Clone/pkg/db"
	"github.com/tuilatri/Amazon-Clone/pkg/mq"
	"github.com/tuilatri/Amazon-Clone/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("[api] %v", err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("marketplace-api")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(ctx)
	}()

	gdb := db.Open(cfg.PGDSN)

	userRepo := repository.NewUserRepo(gdb)
	productRepo := repository.NewProductRepo(gdb)
	cartRepo := repository.NewCartRepo(gdb)
	orderRepo := repository.NewOrderRepo(gdb)
	methodRepo := repository.NewMethodRepo(gdb)
	reportRepo := repository.NewReportRepo(gdb)
	for _, m := range []interface{ Migrate() error }{userRepo, productRepo, cartRepo, orderRepo, methodRepo} {
		if err := m.Migrate(); err != nil {
			log.Fatalf("[api] migrate: %v", err)
		}
	}

	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.EventExchange))
	defer pub.Close()

	var recommend service.Recommender
	if cfg.RecommendURL != "" {
		recommend = service.NewHTTPRecommender(cfg.RecommendURL)
	}

	jwtTTL := time.Duration(cfg.JWTExpireMin) * time.Minute
	resetTTL := time.Duration(cfg.ResetCodeTTLMin) * time.Minute

	authSvc := service.NewAuthSvc(userRepo, pub, jwtTTL)
	userSvc := service.NewUserSvc(userRepo, pub, resetTTL)
	catalogSvc := service.NewCatalogSvc(productRepo, recommend)
	cartSvc := service.NewCartSvc(cartRepo, userRepo, productRepo)
	orderSvc := service.NewOrderSvc(orderRepo, userRepo, productRepo, methodRepo, cartRepo, pub)
	adminSvc := service.NewAdminSvc(reportRepo, userRepo, methodRepo)

	router := transport.NewRouter(transport.Handlers{
		Auth:    transport.NewAuthHandler(authSvc, userSvc),
		Profile: transport.NewProfileHandler(userSvc),
		Catalog: transport.NewCatalogHandler(catalogSvc),
		Cart:    transport.NewCartHandler(cartSvc),
		Order:   transport.NewOrderHandler(orderSvc),
		Admin:   transport.NewAdminHandler(adminSvc, orderSvc),
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Printf("[api] listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[api] serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[api] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
}
