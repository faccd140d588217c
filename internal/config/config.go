package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultPort = "3000"

type Config struct {
	Port string `validate:"required,numeric"`
	// BaseURL drives page metadata (metadataBase, social preview images).
	BaseURL string `validate:"required,url"`

	SupabaseURL     string `validate:"required_without=DatabaseURL,omitempty,url"`
	SupabaseAnonKey string `validate:"required_with=SupabaseURL"`
	// DatabaseURL, when set, reads jobs straight from Postgres instead of
	// going through the REST API.
	DatabaseURL string

	GinMode  string `validate:"omitempty,oneof=debug release test"`
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`
}

// Load reads .env (if there is one) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "loading .env")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:            firstNonEmpty(getenv("PORT"), defaultPort),
		SupabaseURL:     strings.TrimRight(firstNonEmpty(getenv("SUPABASE_URL"), getenv("NEXT_PUBLIC_SUPABASE_URL")), "/"),
		SupabaseAnonKey: firstNonEmpty(getenv("SUPABASE_ANON_KEY"), getenv("NEXT_PUBLIC_SUPABASE_ANON_KEY")),
		DatabaseURL:     getenv("DATABASE_URL"),
		GinMode:         getenv("GIN_MODE"),
		LogLevel:        firstNonEmpty(getenv("LOG_LEVEL"), "info"),
	}
	cfg.BaseURL = baseURL(getenv("MAIN_URL"), cfg.Port)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// UseDatabase reports whether jobs are read through Postgres directly.
func (c *Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

func baseURL(mainURL, port string) string {
	mainURL = strings.TrimSpace(mainURL)
	if mainURL == "" {
		return "http://localhost:" + port
	}
	return "https://" + strings.TrimRight(mainURL, "/")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
