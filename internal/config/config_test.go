package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://advision:secret@db:5432/advision")
	t.Setenv("SECRET_KEY", "super-secret")
	t.Setenv("API_ENCRYPTION_KEY", "")
	t.Setenv("FRONTEND_URL", "https://app.advision.com/")
	t.Setenv("ADDITIONAL_FRONTEND_URLS", "https://staging.advision.com, ,https://app.advision.com")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("TIME_ZONE", "America/Sao_Paulo")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://advision:secret@db:5432/advision", cfg.Database.DSN)
	assert.Equal(t, "super-secret", cfg.Auth.EncryptionKey)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, []string{"https://app.advision.com", "https://staging.advision.com"}, cfg.AllowedOrigins())
	assert.Equal(t, "America/Sao_Paulo", cfg.Location().String())
}

func TestConfig_normalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantDSN string
		wantErr bool
	}{
		{
			name: "monta DSN a partir das partes",
			cfg: Config{
				App:      App{TimeZone: "UTC"},
				Database: Database{Driver: "postgres", User: "u", Password: "p", Host: "localhost:5432/db"},
			},
			wantDSN: "postgres://u:p@localhost:5432/db",
		},
		{
			name: "DATABASE_URL tem prioridade",
			cfg: Config{
				App:      App{TimeZone: "UTC"},
				Database: Database{DSN: "postgres://x@y/z", Driver: "postgres", User: "u"},
			},
			wantDSN: "postgres://x@y/z",
		},
		{
			name:    "fuso horário inválido",
			cfg:     Config{App: App{TimeZone: "Mars/Olympus"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.normalize()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDSN, tt.cfg.Database.DSN)
		})
	}
}

func TestConfig_AllowedHosts(t *testing.T) {
	cfg := Config{Server: Server{
		BackendHost:     "https://api.advision.com",
		AdditionalHosts: []string{"advision.onrender.com"},
	}}

	assert.Equal(t, []string{"localhost", "127.0.0.1", "api.advision.com", "advision.onrender.com"}, cfg.AllowedHosts())
}
