// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, upstream HTTP and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Upstream contains settings for the outgoing feed fetches
	Upstream UpstreamConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimitPerSecond is the per-IP request rate; 0 disables limiting
	RateLimitPerSecond int

	// RateLimitBurst is the per-IP burst allowance
	RateLimitBurst int
}

// CacheConfig holds cache backend configuration.
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// UpstreamConfig holds settings for outgoing ChurchSuite requests.
type UpstreamConfig struct {
	// TimeoutSeconds bounds each upstream fetch
	TimeoutSeconds int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// File is the log file path; empty logs to stdout
	File string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			RateLimitPerSecond: getEnvAsIntOrDefault("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Upstream: UpstreamConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("UPSTREAM_TIMEOUT", 10),
		},
		Log: LogConfig{
			File: getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default.
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimitPerSecond < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Upstream.TimeoutSeconds < 1 {
		return errors.New("upstream timeout must be at least 1 second")
	}

	return nil
}
