package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 20, cfg.RateLimit.PerSecond)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.Equal(t, "db/migrations", cfg.Database.MigrationsPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/finance.db")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://finance.example.com")
	t.Setenv("RATE_LIMIT_PER_SECOND", "3")
	t.Setenv("RATE_LIMIT_BURST", "6")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.IsSQLite())
	assert.Equal(t, "/tmp/finance.db", cfg.Database.DSN())
	assert.Equal(t, []string{"http://localhost:3000", "https://finance.example.com"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 3, cfg.RateLimit.PerSecond)
	assert.Equal(t, 6, cfg.RateLimit.Burst)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "lots")
	t.Setenv("AUTO_MIGRATE", "maybe")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 20, cfg.RateLimit.PerSecond)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	c := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "finance",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=finance sslmode=disable", c.DSN())
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = "mysql"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")

	cfg.Database.Driver = DriverSQLite
	cfg.RateLimit.Burst = 0
	assert.Error(t, cfg.Validate())
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for level, want := range tests {
		c := LogConfig{Level: level}
		assert.Equal(t, want, c.SlogLevel(), level)
	}
}
