package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database, optional. Answer counters stay in memory when empty.
	DatabaseURL string

	// Redis, optional. Shares rate-limit counters between replicas.
	RedisURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://escola.example.com"

	// Rate limiting per client IP, requests per minute
	RateLimit int

	// YAML file with school rules, dates and chips
	ConfigFile string

	// Logging
	LogLevel string // debug, info, warn, error

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Escola"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; real
// environment variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),
		RateLimit:   getEnvInt("RATE_LIMIT", 100),
		ConfigFile:  getEnv("CONFIG_FILE", "config.yaml"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		SiteTitle:   getEnv("SITE_TITLE", "Escola"),
		SiteTagline: getEnv("SITE_TAGLINE", "Tire dúvidas e monte seu plano de estudos"),
		SiteFooter:  getEnv("SITE_FOOTER", "Escola - Assistente de estudos"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasDatabase returns true if a Postgres connection string is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis returns true if a Redis URL is configured.
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}
