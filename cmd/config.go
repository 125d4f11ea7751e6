package cmd

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries every runtime setting. Values load from the environment
// (optionally seeded from .env); all tunables, including cache TTLs and
// fallback constants, live here rather than in code.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// RedisAddr empty means the in-process cache is used instead.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// RabbitURL empty disables event publishing.
	RabbitURL      string `envconfig:"RABBITMQ_URL"`
	RabbitExchange string `envconfig:"RABBITMQ_EXCHANGE" default:"castlecare.orders"`

	PropertyAPIBaseURL string `envconfig:"PROPERTY_API_BASE_URL" default:"https://zillow-com1.p.rapidapi.com"`
	PropertyAPIKey     string `envconfig:"PROPERTY_API_KEY"`
	PropertyAPIHost    string `envconfig:"PROPERTY_API_HOST" default:"zillow-com1.p.rapidapi.com"`

	// Fallback property size substituted when the lookup fails.
	FallbackLivingAreaSqFt int    `envconfig:"FALLBACK_LIVING_AREA_SQFT" default:"1800"`
	FallbackLotSize        string `envconfig:"FALLBACK_LOT_SIZE" default:"0.25 acres"`

	// Cache TTLs are backstops; correctness comes from explicit invalidation.
	OrderCacheTTL    time.Duration `envconfig:"ORDER_CACHE_TTL" default:"2m"`
	PricingCacheTTL  time.Duration `envconfig:"PRICING_CACHE_TTL" default:"1h"`
	PropertyCacheTTL time.Duration `envconfig:"PROPERTY_CACHE_TTL" default:"168h"`

	// Orders still PENDING after this age get re-published by the sweep.
	StaleOrderAge time.Duration `envconfig:"STALE_ORDER_AGE" default:"30m"`
}

// LoadConfig binds configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return config, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
