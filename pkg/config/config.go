package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Env string `envconfig:"APP_ENV" default:"dev"`

	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`

	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// RabbitMQ
	RabbitURL     string `envconfig:"RABBIT_URL" required:"true"`
	EventExchange string `envconfig:"EVENT_EXCHANGE" default:"marketplace.events"`
	NotifyQueue   string `envconfig:"NOTIFY_QUEUE" default:"notify.q"`

	// Recommendation service (external; catalog falls back to top rated when empty)
	RecommendURL string `envconfig:"RECOMMEND_URL" default:""`

	// SMTP (notification worker; console notifier is used when host is empty)
	SMTPHost string `envconfig:"SMTP_HOST" default:""`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"25"`
	SMTPFrom string `envconfig:"SMTP_FROM" default:"no-reply@localhost"`

	// Password reset codes
	ResetCodeTTLMin int `envconfig:"RESET_CODE_TTL_MIN" default:"15"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
