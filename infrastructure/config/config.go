package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	IndexName     string // GSI1 - inverted key lookups (followers, ownership)
	EventBusName  string

	// Authentication
	AuthorityEndpoint string // remote authority; empty means local tokens
	JWTSecret         string
	JWTIssuer         string
	TokenTTL          time.Duration

	// Observability
	LogLevel         string
	MetricsNamespace string
	EnableMetrics    bool

	// Features
	EnableCORS      bool
	RateLimitPerMin int
	SearchResultCap int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "beacon")),
		IndexName:     getEnv("INDEX_NAME", "InvertedIndex"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "beacon-events"),

		AuthorityEndpoint: getEnv("AUTHORITY_ENDPOINT", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTIssuer:         getEnv("JWT_ISSUER", "beacon-backend"),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 24*time.Hour),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "Beacon"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", true),

		EnableCORS:      getEnvBool("ENABLE_CORS", true),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 300),
		SearchResultCap: getEnvInt("SEARCH_RESULT_CAP", 100),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.AuthorityEndpoint == "" && c.JWTSecret == "" {
			return fmt.Errorf("AUTHORITY_ENDPOINT or JWT_SECRET is required in production")
		}
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required")
		}
		if c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required")
		}
	}
	return nil
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
