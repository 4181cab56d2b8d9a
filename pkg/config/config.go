// Package config loads server settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPaths are the .env locations tried in order. The first one found is loaded.
var EnvPaths = []string{".env", "../.env", "../../.env"}

// Config holds the settings shared by the server, the Vercel entry point and the CLI
type Config struct {
	Port          string `env:"PORT" envDefault:"8000"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DataPath      string `env:"DATA_PATH" envDefault:"camp.db"`
	JWTSecret     string `env:"JWT_SECRET"`
	MasterSecret  string `env:"API_MASTER_SECRET"`
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	GinMode       string `env:"GIN_MODE"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the first .env file that exists, then parses the environment
func Load() (*Config, error) {
	LoadDotEnv(EnvPaths...)
	return Parse()
}

// LoadDotEnv loads the first existing file among paths. Variables already set win.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// Parse builds a Config from the current environment
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
