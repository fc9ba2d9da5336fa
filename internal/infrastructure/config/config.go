package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL        string
	AccessTokenExpiry time.Duration
	StripeClientID    string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:        getEnv("APP_BASE_URL", "http://localhost:8080"),
		AccessTokenExpiry: time.Hour * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_HOURS", 72)),
		StripeClientID:    getEnv("STRIPE_CLIENT_ID", ""),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetStripeClientID returns the payment provider's publishable client id.
func (c *Config) GetStripeClientID() string {
	return c.StripeClientID
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
