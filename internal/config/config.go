package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL may legitimately be empty at load time; the HTTP client
	// reports a config error on the first request instead of failing startup.
	APIBaseURL string

	StateDir string
	Version  string

	// Optional token-store backings. When both are empty the session falls
	// back to the file store under StateDir.
	RedisAddr   string
	DatabaseURL string

	StubPort string
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	stateDir := os.Getenv("STATE_DIR")
	if stateDir == "" {
		stateDir = ".state"
	}

	stubPort := os.Getenv("STUB_PORT")
	if stubPort == "" {
		stubPort = "8080"
	}

	return &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		StateDir:    stateDir,
		Version:     os.Getenv("VERSION"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StubPort:    stubPort,
	}, nil
}
