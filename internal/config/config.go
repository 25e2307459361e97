package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Config carries the settings that services receive explicitly instead of
// reading the environment themselves.
type Config struct {
	Port          string
	SiteURL       string
	AllowOrigins  string
	AuthJWTSecret string

	StripeSecretKey     string
	StripeWebhookSecret string

	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3EndpointURL     string
}

// Load reads the .env file and assembles the application config.
func Load() *Config {
	LoadEnv()

	return &Config{
		Port:          GetEnv("PORT", "3000"),
		SiteURL:       GetEnv("SITE_URL", "http://localhost:3000"),
		AllowOrigins:  GetEnv("ALLOW_ORIGINS", "http://localhost:5173"),
		AuthJWTSecret: GetEnv("AUTH_JWT_SECRET", "lpaflow"),

		StripeSecretKey:     GetEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: GetEnv("STRIPE_WEBHOOK_SECRET", ""),

		S3Region:          GetEnv("S3_REGION", "us-east-1"),
		S3Bucket:          GetEnv("S3_BUCKET", "lpa-pdfs"),
		S3AccessKeyID:     GetEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: GetEnv("S3_SECRET_ACCESS_KEY", ""),
		S3EndpointURL:     GetEnv("S3_ENDPOINT_URL", ""),
	}
}
