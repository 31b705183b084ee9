// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables
)

type Config struct { // Config struct holds all configuration values
	DBPath        string // Path to the SQLite database file
	Addr          string // Address the web server listens on
	SessionSecret string // Secret key for signing session cookies
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		DBPath:        getEnv("DB_PATH", "feedback.db"),   // Get DB path or use default
		Addr:          getEnv("ADDR", ":8080"),            // Get listen address or use default
		SessionSecret: getEnv("SESSION_SECRET", "supersecret"), // Get session secret or use default
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
