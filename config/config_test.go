package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "gastronomia", cfg.DBName)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "gastronomia_test")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL_HOURS", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "gastronomia_test", cfg.DBName)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestLoadConfigRejectsBadTTL(t *testing.T) {
	for _, ttl := range []string{"abc", "0", "-4"} {
		t.Setenv("SESSION_TTL_HOURS", ttl)
		_, err := LoadConfig()
		assert.Error(t, err, ttl)
	}
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg := &Config{
		ServerPort: "8080",
		DBHost:     "db",
		DBName:     "gastronomia",
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "JWTSecret", verr.Field)

	cfg.JWTSecret = "secret"
	err = ValidateConfig(cfg)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "DBPassword", verr.Field)

	cfg.DBPassword = "password"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfigMissingBasics(t *testing.T) {
	err := ValidateConfig(&Config{})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ServerPort", verr.Field)

	err = ValidateConfig(&Config{ServerPort: "8080"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Database", verr.Field)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")

	cases := map[string]Environment{
		"":            Development,
		"development": Development,
		"test":        Test,
		"production":  Production,
	}
	for env, want := range cases {
		t.Setenv("ENV", env)
		assert.Equal(t, want, GetEnvironment(), env)
	}

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
