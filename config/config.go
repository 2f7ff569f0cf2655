package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port                  string        // Service port
	DirectoryURL          string        // Upstream directory GraphQL endpoint
	DirectoryTimeout      time.Duration // HTTP client timeout for directory calls
	IdentityLookupTimeout time.Duration // Budget for a single identity lookup flight
	TokenSecret           string        // Secret verifying identity-provider tokens
	TokenIssuer           string        // Expected JWT issuer claim
	TokenAudience         string        // Expected JWT audience claim
	InternalSharedSecret  string        // Shared secret for internal endpoints
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		Port:                  getEnv("PORT", "8890"),
		DirectoryURL:          getEnv("DIRECTORY_URL", "http://directory:8080/graphql"),
		DirectoryTimeout:      5 * time.Second,
		IdentityLookupTimeout: 3 * time.Second,
		TokenSecret:           getEnv("TOKEN_SECRET", ""),
		TokenIssuer:           getEnv("TOKEN_ISSUER", "identity-provider"),
		TokenAudience:         getEnv("TOKEN_AUDIENCE", "board-gateway"),
		InternalSharedSecret:  getEnv("INTERNAL_SHARED_SECRET", ""),
	}

	// Parse DIRECTORY_TIMEOUT if provided
	if timeoutStr := os.Getenv("DIRECTORY_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DIRECTORY_TIMEOUT format: %w", err)
		}
		config.DirectoryTimeout = duration
	}

	// Parse IDENTITY_LOOKUP_TIMEOUT if provided
	if timeoutStr := os.Getenv("IDENTITY_LOOKUP_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid IDENTITY_LOOKUP_TIMEOUT format: %w", err)
		}
		config.IdentityLookupTimeout = duration
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.DirectoryURL == "" {
		return fmt.Errorf("DIRECTORY_URL cannot be empty")
	}

	if c.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET cannot be empty")
	}

	if len(c.TokenSecret) < 32 {
		return fmt.Errorf("TOKEN_SECRET must be at least 32 characters")
	}

	if c.IdentityLookupTimeout <= 0 {
		return fmt.Errorf("IDENTITY_LOOKUP_TIMEOUT must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
