package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	domainconfig "github.com/kik369/sankey-kiro-app-sub000/domain/config"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Logging
	LogLevel string

	// Collection limits
	MaxNodes       int
	MaxConnections int

	// Recompute debounce quiet period
	RecomputeDelay time.Duration

	// Theme applied when no preference has been stored
	DefaultTheme string

	// CORS
	EnableCORS     bool
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		MaxNodes:       getEnvInt("MAX_NODES", 50),
		MaxConnections: getEnvInt("MAX_CONNECTIONS", 100),

		RecomputeDelay: getEnvDuration("RECOMPUTE_DELAY", 300*time.Millisecond),

		DefaultTheme: getEnv("DEFAULT_THEME", "dark"),

		EnableCORS:     getEnvBool("ENABLE_CORS", true),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.MaxNodes <= 0 {
		return fmt.Errorf("MAX_NODES must be positive, got %d", c.MaxNodes)
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("MAX_CONNECTIONS must be positive, got %d", c.MaxConnections)
	}
	if c.RecomputeDelay < 0 {
		return fmt.Errorf("RECOMPUTE_DELAY must not be negative")
	}
	switch c.DefaultTheme {
	case "dark", "light":
	default:
		return fmt.Errorf("DEFAULT_THEME must be dark or light, got %q", c.DefaultTheme)
	}
	return nil
}

// DomainConfig builds the domain rule set from the loaded configuration
func (c *Config) DomainConfig() domainconfig.DomainConfig {
	dc := *domainconfig.DefaultDomainConfig()
	dc.MaxNodes = c.MaxNodes
	dc.MaxConnections = c.MaxConnections
	dc.DefaultTheme = c.DefaultTheme
	return dc
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList gets a comma separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
