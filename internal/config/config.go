package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	AppPort string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	JWTSecret   string
	AdminAPIKey string

	TossClientKey string
	TossSecretKey string
	PublicBaseURL string

	SMSAccessKey    string
	SMSSecretKey    string
	SMSServiceID    string
	SMSSenderNumber string

	SentryDSN        string
	ShippingCacheTTL time.Duration
}

// SMSConfigured reports whether every Naver Cloud SENS credential is present.
func (c *Config) SMSConfigured() bool {
	return c.SMSAccessKey != "" && c.SMSSecretKey != "" && c.SMSServiceID != "" && c.SMSSenderNumber != ""
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:  getEnv("APP_ENV", "development"),
		AppPort: getEnv("APP_PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SessionTTL:    getEnvDuration("SESSION_TTL", 7*24*time.Hour),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		TossClientKey: os.Getenv("TOSS_CLIENT_KEY"),
		TossSecretKey: os.Getenv("TOSS_SECRET_KEY"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		SMSAccessKey:    os.Getenv("NAVER_CLOUD_ACCESS_KEY"),
		SMSSecretKey:    os.Getenv("NAVER_CLOUD_SECRET_KEY"),
		SMSServiceID:    os.Getenv("NAVER_CLOUD_SERVICE_ID"),
		SMSSenderNumber: os.Getenv("SMS_SENDER_NUMBER"),

		SentryDSN:        os.Getenv("SENTRY_DSN"),
		ShippingCacheTTL: getEnvDuration("SHIPPING_CACHE_TTL", 10*time.Minute),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("10m", "168h").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
