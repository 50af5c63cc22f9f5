// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// DBPath is the SQLite database file path.
	DBPath string

	// StaticPath is the directory the frontend build is served from.
	StaticPath string

	// JWTSecret signs session tokens. Required; there is no safe default.
	JWTSecret string

	// TokenDuration is how long issued tokens stay valid.
	TokenDuration time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	tokenDuration, err := time.ParseDuration(getEnv("TOKEN_DURATION", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_DURATION: %w", err)
	}

	return &Config{
		Port:          port,
		DBPath:        getEnv("DB_PATH", "./data/receipts.db"),
		StaticPath:    getEnv("STATIC_PATH", "./frontend/dist"),
		JWTSecret:     secret,
		TokenDuration: tokenDuration,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
