package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the server settings, read from the environment.
type Config struct {
	Port        string `validate:"required,numeric"`
	Prod        bool
	SessionKey  string        `validate:"required"`
	JWTSecret   string        `validate:"required,min=32"`
	RunTokenTTL time.Duration `validate:"gt=0"`
	RunIdleTTL  time.Duration `validate:"gt=0"`
	SocketDebug bool
	CorsOrigins []string `validate:"min=1,dive,required"`
	UseHTTPS    bool
	CertFile    string `validate:"required_if=UseHTTPS true"`
	KeyFile     string `validate:"required_if=UseHTTPS true"`
}

var validate = validator.New()

// Load reads .env (if any) and the environment into a validated Config.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may carry everything
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT"),
		Prod:        getenv("PROD") == "true",
		SessionKey:  getenv("KEY"),
		JWTSecret:   getenv("JWT_SECRET"),
		SocketDebug: getenv("SOCKET_DEBUG") == "true",
		UseHTTPS:    getenv("USE_HTTPS") == "true",
		CertFile:    getenv("CERT_FILE"),
		KeyFile:     getenv("KEY_FILE"),
		CorsOrigins: []string{"*"},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		if cfg.UseHTTPS {
			cfg.Port = "443"
		}
	}

	var err error
	if cfg.RunTokenTTL, err = duration(getenv, "RUN_TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RunIdleTTL, err = duration(getenv, "RUN_IDLE_TTL", 2*time.Hour); err != nil {
		return nil, err
	}

	if origins := getenv("CORS_ORIGINS"); origins != "" {
		cfg.CorsOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CorsOrigins = append(cfg.CorsOrigins, o)
			}
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
