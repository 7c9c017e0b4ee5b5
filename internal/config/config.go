package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Password hashing
	BcryptCost int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "recipebox"),
		DBPassword: getEnv("DB_PASSWORD", "recipebox"),
		DBName:     getEnv("DB_NAME", "recipebox"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Parse bcrypt cost
	costStr := getEnv("BCRYPT_COST", "10")
	cost, err := strconv.Atoi(costStr)
	if err != nil || cost < 4 || cost > 31 {
		log.Printf("Warning: invalid BCRYPT_COST value '%s', falling back to 10\n", costStr)
		cost = 10
	}
	config.BcryptCost = cost

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
