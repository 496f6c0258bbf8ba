package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvProduction = "production"

	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	devJWTSecret = "dev-only-secret-change-me"
)

// Config is read once at startup from the environment (.env included).
type Config struct {
	Env  string
	Port string

	JWTSecret string
	JWTTTL    time.Duration

	StorageDriver string
	DynamoDB      DynamoDB

	UploadsDir string
	LiveWindow time.Duration

	RedisURL         string
	LoginMaxFailures int
	LoginLockWindow  time.Duration

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	SandboxPayerEmail      string

	// Seeded into the memory store so a fresh local run can log in.
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

// DynamoDB holds connectivity settings. Table names are read by each
// repository from its own *_TABLE variable.
type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// Load reads the configuration. It only fails on values that are present
// but malformed, or on settings production must not run without.
func Load() (Config, error) {
	cfg := Config{
		Env:           getenvDefault("APP_ENV", "development"),
		Port:          getenvDefault("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		UploadsDir:             getenvDefault("UPLOADS_DIR", "uploads"),
		RedisURL:               os.Getenv("REDIS_URL"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		SandboxPayerEmail:      os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}

	var err error
	if cfg.JWTTTL, err = durationEnv("JWT_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.LiveWindow, err = durationEnv("LIVE_WINDOW", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.LoginLockWindow, err = durationEnv("LOGIN_LOCK_WINDOW", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.LoginMaxFailures, err = intEnv("LOGIN_MAX_FAILURES", 5); err != nil {
		return Config{}, err
	}
	if cfg.PaymentGatewayMock, err = boolEnv("PAYMENT_GATEWAY_MOCK", false); err != nil {
		return Config{}, err
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDynamoDB, StorageMemory, cfg.StorageDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", EnvProduction)
		}
		log.Printf("[config] JWT_SECRET not set; using the development secret")
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.MercadoPagoAccessToken == "" && !cfg.PaymentGatewayMock {
		log.Printf("[config] MERCADOPAGO_ACCESS_TOKEN not set; billing charges will fail until configured")
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c Config) HTTPAddr() string {
	return ":" + c.Port
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return b, nil
}
