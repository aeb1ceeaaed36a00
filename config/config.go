package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	PaymentApiURL    string // Payment provider base URL
	PaymentSecretKey string // Payment provider secret key
	PaymentCurrency  string

	EmailSender string
	Password    string // SMTP Password

	AdminDigestEmail string // Recipient of the daily pending-class digest
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:   getEnv("PORT", "5000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "camp_data"),
		DBPort:     getEnv("DB_PORT", "5432"),

		PaymentApiURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com/v1"),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", "defaultSecret"),
		PaymentCurrency:  getEnv("PAYMENT_CURRENCY", "usd"),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		AdminDigestEmail: getEnv("ADMIN_DIGEST_EMAIL", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.PaymentSecretKey == "defaultSecret" {
		log.Println("Warning: Using default PAYMENT_SECRET_KEY. Payment intents will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
