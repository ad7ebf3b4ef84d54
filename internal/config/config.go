// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers understood by the service.
const (
	DriverAzure = "azure"
	DriverS3    = "s3"
)

// DefaultMaxUploadBytes is the request body limit for uploads (10 MiB).
const DefaultMaxUploadBytes int64 = 10 << 20

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	MaxUploadBytes int64

	StorageDriver     string
	StorageAccountURL string // e.g. "https://myaccount.blob.core.windows.net"
	Container         string

	// Azure Blob
	AzureConnectionString string

	// S3-compatible (MinIO locally, any S3 provider in production)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageUseSSL    bool
}

// Load reads configuration from a .env file (if present) and environment variables.
// A missing required setting is returned as an error; the caller must not start.
func Load() (*Config, error) {
	// Absent .env is normal outside local development.
	_ = godotenv.Load()

	maxBytes, err := getEnvAsInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:     getEnv("PORT", "5000"),
		AppEnv:   getEnv("APP_ENV", "production"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		MaxUploadBytes: maxBytes,

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DriverAzure)),
		StorageAccountURL: strings.TrimRight(os.Getenv("STORAGE_ACCOUNT_URL"), "/"),
		Container:         getEnv("IMAGES_CONTAINER", "lanternfly-images"),

		AzureConnectionString: os.Getenv("AZURE_STORAGE_CONNECTION_STRING"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every required setting that is missing for the selected driver.
func (c *Config) Validate() error {
	var missing []string
	if c.StorageAccountURL == "" {
		missing = append(missing, "STORAGE_ACCOUNT_URL")
	}

	switch c.StorageDriver {
	case DriverAzure:
		if c.AzureConnectionString == "" {
			missing = append(missing, "AZURE_STORAGE_CONNECTION_STRING")
		}
	case DriverS3:
		if c.StorageEndpoint == "" {
			missing = append(missing, "STORAGE_ENDPOINT")
		}
		if c.StorageAccessKey == "" {
			missing = append(missing, "STORAGE_ACCESS_KEY")
		}
		if c.StorageSecretKey == "" {
			missing = append(missing, "STORAGE_SECRET_KEY")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", c.StorageDriver, DriverAzure, DriverS3)
	}

	if len(missing) > 0 {
		return errors.New("missing required environment vars: " + strings.Join(missing, ", "))
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// ContainerURL returns the public base URL of the image container.
func (c *Config) ContainerURL() string {
	return c.StorageAccountURL + "/" + c.Container
}

// IsDevelopment returns true when the app is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
