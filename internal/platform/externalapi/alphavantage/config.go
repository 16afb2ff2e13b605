// Package alphavantage provides a client for the Alpha Vantage market data API.
package alphavantage

import (
	"os"
	"time"
)

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://www.alphavantage.co")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("ALPHAVANTAGE_BASE_URL")
	if base == "" {
		base = "https://www.alphavantage.co"
	}
	return Config{
		APIKey:  os.Getenv("ALPHAVANTAGE_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
