package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "JWT_SECRET", "TOKEN_TTL", "SALT_ROUND", "REPORT_CRON"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.SaltRound)
	assert.Equal(t, defaultJWTSecret, cfg.JWTKey)
	assert.Empty(t, cfg.ReportCron)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("SALT_ROUND", "14")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 14, cfg.SaltRound)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL", "-5m")

	assert.Equal(t, 24*time.Hour, Load().TokenTTL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "site", DBSSLMode: "require",
	}

	cfg.DBDriver = "postgres"
	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=db user=u password=p dbname=site port=5432 sslmode=require", dsn)

	cfg.DBDriver = "mysql"
	dsn, err = cfg.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "u:p@tcp(db:5432)/site")
	assert.Contains(t, dsn, "parseTime=True")

	cfg.DBDriver = "sqlite"
	dsn, err = cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "site", dsn)

	cfg.DBDriver = "oracle"
	_, err = cfg.DSN()
	assert.Error(t, err)
}
