package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// CatalogConfig holds the catalog service settings.
type CatalogConfig struct {
	Port   string `env:"CATALOG_PORT" envDefault:"3001"`
	DBPath string `env:"CATALOG_DB_PATH" envDefault:"./catalog.db"`
}

// UserConfig holds the user service settings. The JWT secret must match the
// one the order service verifies against.
type UserConfig struct {
	Port      string        `env:"USER_PORT" envDefault:"3002"`
	DBPath    string        `env:"USER_DB_PATH" envDefault:"./user.db"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

// OrderConfig holds the order service settings, including where to reach the
// catalog for best-effort product enrichment.
type OrderConfig struct {
	Port           string        `env:"ORDER_PORT" envDefault:"3003"`
	DBPath         string        `env:"ORDER_DB_PATH" envDefault:"./order.db"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
	CatalogURL     string        `env:"CATALOG_URL" envDefault:"http://localhost:3001"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"2s"`
}

// LoadCatalog reads the catalog service configuration from the environment.
func LoadCatalog() (*CatalogConfig, error) {
	cfg := &CatalogConfig{}
	if err := load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUser reads the user service configuration from the environment.
func LoadUser() (*UserConfig, error) {
	cfg := &UserConfig{}
	if err := load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrder reads the order service configuration from the environment.
func LoadOrder() (*OrderConfig, error) {
	cfg := &OrderConfig{}
	if err := load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(cfg interface{}) error {
	// A .env file is optional; real deployments set the environment directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}
