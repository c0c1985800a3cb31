package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is built once in main
// and handed to the services at construction.
type Config struct {
	Mongo  MongoConfig
	Server ServerConfig
	App    AppConfig
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URL    string
	DBName string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AppConfig holds application-specific settings.
type AppConfig struct {
	JWTSecret string
	UploadDir string
}

// Load reads configuration from environment variables, consulting a .env
// file first if one exists.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file is fine.
	_ = godotenv.Load()

	config := &Config{
		Mongo: MongoConfig{
			URL:    getEnv("MONGODB_URL", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "twitter_db"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		App: AppConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}

	if config.App.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
