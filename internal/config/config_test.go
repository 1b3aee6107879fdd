package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 30
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: ufund
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_EVENTS"
auth:
  jwt_signing_key: "secret"
checkout:
  worker_pool_size: 4
  retry_max_elapsed: "30s"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 30, cfg.Server.ReadTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "secret", cfg.Auth.JWTSigningKey)
				assert.Equal(t, 4, cfg.Checkout.WorkerPoolSize)
				assert.Equal(t, 30*time.Second, cfg.Checkout.RetryMaxElapsed)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: ufund
auth:
  jwt_signing_key: "secret"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.MaxOpenConns)
				assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, "FUNDING_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, 8, cfg.Checkout.WorkerPoolSize)
				assert.Equal(t, 15*time.Second, cfg.Checkout.RetryMaxElapsed)
				assert.Equal(t, 10*time.Second, cfg.Checkout.CallTimeout)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: ufund
auth:
  jwt_signing_key: "secret"
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: localhost
auth:
  jwt_signing_key: "secret"
`,
			expectError: true,
		},
		{
			name: "missing signing key",
			configFile: `
database:
  host: localhost
  dbname: ufund
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.configFile)

			cfg, err := LoadAPIConfig(path, t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig_EnvOverride(t *testing.T) {
	t.Setenv("UFUND_DATABASE_HOST", "db.internal")
	t.Setenv("UFUND_DATABASE_DBNAME", "ufund_prod")
	t.Setenv("UFUND_AUTH_JWT_SIGNING_KEY", "env-secret")
	t.Setenv("UFUND_SERVER_PORT", "9999")

	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "ufund_prod", cfg.Database.DBName)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSigningKey)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "ufund",
		Password: "pass",
		DBName:   "needs",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=ufund password=pass dbname=needs sslmode=disable",
		cfg.DSN())
}
