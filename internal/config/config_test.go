package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecretAndURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGO_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("MINIO_BUCKET", "")
	t.Setenv("MINIO_PUBLIC_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staffdir", cfg.MongoDB)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:9000", cfg.MinioEndpoint)
	assert.Equal(t, "staffdir-uploads", cfg.MinioBucket)
	assert.Equal(t, "http://localhost:9000", cfg.MinioPublicURL)
}

func TestLoadPublicURLOverride(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MINIO_PUBLIC_URL", "https://cdn.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", cfg.MinioPublicURL)
}
