package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// MustGetEnv gets an environment variable or exits the process if it is unset.
// Used for the variables the service cannot run without.
func MustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		logrus.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// ValidateStartup checks all required configuration before the server starts.
// Failing fast here beats failing on the first request.
func ValidateStartup() {
	MustGetEnv("DATABASE_URL")
	MustGetEnv("ADMIN_API_KEY")
	MustGetEnv("JWT_SECRET")
}
