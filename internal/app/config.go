package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"leave-approval/internal/storage"
)

const (
	StorageDriverAzure = "azure"
	StorageDriverLocal = "local"
)

// Config is read once at start and never mutated afterwards.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	StorageDriver         string
	AzureConnectionString string
	AzureContainer        string
	LocalStorageDir       string
	LocalStorageBaseURL   string
	OverwritePolicy       storage.OverwritePolicy

	RequireMedicalDocument bool

	RateLimitRPS   float64
	RateLimitBurst int

	MaxConnectRetries int
}

// LoadConfig reads the environment. Call godotenv.Load before it to pick up
// a local .env file.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                  envOr("PORT", "3000"),
		DBHost:                os.Getenv("DB_HOST"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBPort:                envOr("DB_PORT", "5432"),
		DBSSLMode:             envOr("DB_SSLMODE", "disable"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		KafkaBroker:           os.Getenv("KAFKA_BROKER"),
		StorageDriver:         strings.ToLower(envOr("STORAGE_DRIVER", StorageDriverAzure)),
		AzureConnectionString: os.Getenv("AZURE_STORAGE_CONNECTION_STRING"),
		AzureContainer:        envOr("AZURE_STORAGE_CONTAINER", "leave-documents"),
		LocalStorageDir:       envOr("STORAGE_LOCAL_DIR", "./data/documents"),
		LocalStorageBaseURL:   envOr("STORAGE_LOCAL_BASE_URL", "http://localhost:3000/files"),
		MaxConnectRetries:     5,
	}

	overwrite, err := envBool("STORAGE_OVERWRITE", true)
	if err != nil {
		return Config{}, err
	}
	if !overwrite {
		cfg.OverwritePolicy = storage.RejectExisting
	}

	if cfg.RequireMedicalDocument, err = envBool("REQUIRE_MEDICAL_DOCUMENT", false); err != nil {
		return Config{}, err
	}

	if cfg.RateLimitRPS, err = envFloat("RATE_LIMIT_RPS", 20); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", 40); err != nil {
		return Config{}, err
	}

	switch cfg.StorageDriver {
	case StorageDriverAzure:
		if cfg.AzureConnectionString == "" {
			return Config{}, fmt.Errorf("AZURE_STORAGE_CONNECTION_STRING is required when STORAGE_DRIVER=%s", StorageDriverAzure)
		}
	case StorageDriverLocal:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
