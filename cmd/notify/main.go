package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tuilatri/Amazon-Clone/internal/notifier"
	"github.com/tuilatri/Amazon-Clone/internal/worker"
	"github.com/tuilatri/Amazon-Clone/pkg/config"
	"github.com/tuilatri/Amazon-Clone/pkg/mq"
	"github.com/tuilatri/Amazon-Clone/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("[notify] %v", err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("marketplace-notify")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(ctx)
	}()

	consumer := must(mq.NewConsumer(cfg.RabbitURL, cfg.EventExchange, cfg.NotifyQueue, worker.Keys))
	defer consumer.Close()

	var notify notifier.Notifier = notifier.Console{}
	if cfg.SMTPHost != "" {
		notify = notifier.NewEmail(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := worker.New(consumer, notify).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("[notify] %v", err)
	}
	log.Println("[notify] stopped")
}
