package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBUrl          string
	ServerPort     string
	Timezone       string
	Environment    string
	LogLevel       string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		DBUrl:       getEnv("DATABASE_URL", "consultorio.db"),
		ServerPort:  getEnv("SERVER_PORT", "3000"),
		Timezone:    getEnv("APP_TIMEZONE", ""),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if raw := getEnv("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	p, err := strconv.Atoi(cfg.ServerPort)
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be a valid TCP port (got %q)", cfg.ServerPort)
	}

	// vazio usa o fuso local do processo
	if cfg.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("APP_TIMEZONE must be an IANA time zone (got %q): %w", cfg.Timezone, err)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// Driver escolhe o driver do gorm pelo formato de DATABASE_URL.
func (c *Config) Driver() string {
	if strings.HasPrefix(c.DBUrl, "postgres://") || strings.HasPrefix(c.DBUrl, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
