package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "dbhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "forkful")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "forkful_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_HOST", "redishost")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dbhost", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "forkful", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "forkful_test", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redishost", cfg.RedisHost)
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_SSL_MODE")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "d",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=d sslmode=disable", cfg.DatabaseDSN())
}
