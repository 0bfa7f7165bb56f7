package config

import (
	"fmt"
	"os"
)

// Config holds all process-wide settings. It is built once at startup and
// treated as read-only afterwards; components receive it by injection.
type Config struct {
	MongoURI  string
	MongoDB   string
	JWTSecret string
	Port      string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioPublicURL string
}

// Load reads configuration from the environment. MONGO_URI and JWT_SECRET
// have no usable defaults, so their absence is an error the caller should
// treat as fatal.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "staffdir"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           getEnv("PORT", "8080"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnv("MINIO_BUCKET", "staffdir-uploads"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg.MinioPublicURL = getEnv("MINIO_PUBLIC_URL", "http://"+cfg.MinioEndpoint)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
