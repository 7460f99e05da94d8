package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PAYMENT_GATEWAY_KEY", "sk_test_123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "parcelDB", cfg.DBName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PAYMENT_GATEWAY_KEY", "sk_test_123")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "other")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "other", cfg.DBName)
}
