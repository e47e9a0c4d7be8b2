package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendMySQL  = "mysql"

	IdentityHeader = "header"
	IdentityJWT    = "jwt"
)

type Config struct {
	Addr           string `yaml:"addr"`
	StoreBackend   string `yaml:"store_backend"`
	DatabaseURL    string `yaml:"database_url"`
	IdentityMode   string `yaml:"identity_mode"`
	IdentityHeader string `yaml:"identity_header"`
	JWTSecret      string `yaml:"jwt_secret"`
	JWTTTLMinutes  int    `yaml:"jwt_ttl_minutes"`
	SeedFile       string `yaml:"seed_file"`
	LogLevel       string `yaml:"log_level"`
}

// Default is the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:           "127.0.0.1:8080",
		StoreBackend:   BackendMemory,
		DatabaseURL:    "appuser:apppass@tcp(127.0.0.1:3306)/bola?parseTime=true&charset=utf8mb4",
		IdentityMode:   IdentityHeader,
		IdentityHeader: "X-Authenticated-User-ID",
		JWTSecret:      "change-me-in-prod",
		JWTTTLMinutes:  60,
		LogLevel:       "info",
	}
}

// Load builds the config from defaults, then the YAML file at path (if any),
// then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Annotatef(err, "read config %q", path)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, errors.Annotatef(err, "decode config %q", path)
		}
	}

	cfg.Addr = getenv("ADDR", cfg.Addr)
	cfg.StoreBackend = strings.ToLower(getenv("STORE_BACKEND", cfg.StoreBackend))
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.IdentityMode = strings.ToLower(getenv("IDENTITY_MODE", cfg.IdentityMode))
	cfg.IdentityHeader = getenv("IDENTITY_HEADER", cfg.IdentityHeader)
	cfg.JWTSecret = getenv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTTTLMinutes = atoi(os.Getenv("JWT_TTL_MINUTES"), cfg.JWTTTLMinutes)
	cfg.SeedFile = getenv("SEED_FILE", cfg.SeedFile)
	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL", cfg.LogLevel))

	return cfg, cfg.Validate()
}

// Validate rejects unknown enum values and an empty token secret.
func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendMySQL:
	default:
		return errors.NotValidf("store backend %q", c.StoreBackend)
	}
	switch c.IdentityMode {
	case IdentityHeader, IdentityJWT:
	default:
		return errors.NotValidf("identity mode %q", c.IdentityMode)
	}
	// The login endpoint signs tokens in every identity mode.
	if c.JWTSecret == "" {
		return errors.NotValidf("empty jwt secret")
	}
	return nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
		return n
	}
	return def
}
