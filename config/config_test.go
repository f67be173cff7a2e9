package config_test

import (
	"HighStakes/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"KEY":        "cookie-secret",
		"JWT_SECRET": secret,
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Prod)
	assert.Equal(t, 24*time.Hour, cfg.RunTokenTTL)
	assert.Equal(t, 2*time.Hour, cfg.RunIdleTTL)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "https defaults to 443",
			vars: map[string]string{"KEY": "k", "JWT_SECRET": secret, "USE_HTTPS": "true",
				"CERT_FILE": "cert.pem", "KEY_FILE": "key.pem"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "443", cfg.Port)
				assert.True(t, cfg.UseHTTPS)
			},
		},
		{
			name: "origins and ttl",
			vars: map[string]string{"KEY": "k", "JWT_SECRET": secret, "PORT": "9000",
				"CORS_ORIGINS": "http://localhost:3000, https://play.example.com", "RUN_TOKEN_TTL": "90m"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "9000", cfg.Port)
				assert.Equal(t, []string{"http://localhost:3000", "https://play.example.com"}, cfg.CorsOrigins)
				assert.Equal(t, 90*time.Minute, cfg.RunTokenTTL)
			},
		},
		{name: "short jwt secret", vars: map[string]string{"KEY": "k", "JWT_SECRET": "short"}, wantErr: true},
		{name: "missing cookie key", vars: map[string]string{"JWT_SECRET": secret}, wantErr: true},
		{name: "https without certificate", vars: map[string]string{"KEY": "k", "JWT_SECRET": secret, "USE_HTTPS": "true"}, wantErr: true},
		{name: "bad ttl", vars: map[string]string{"KEY": "k", "JWT_SECRET": secret, "RUN_TOKEN_TTL": "soon"}, wantErr: true},
		{name: "non numeric port", vars: map[string]string{"KEY": "k", "JWT_SECRET": secret, "PORT": "http"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.FromEnv(env(tt.vars))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
