// Package config loads every runtime setting once, at process start, into an
// explicit struct that gets injected into the pieces that need it. Nothing in
// the rest of the codebase reads the environment directly.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	Dev            bool
	AllowedOrigins []string
}

type DatabaseConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
}

// WebpayConfig carries the Webpay Plus REST credentials. The defaults point at
// Transbank's public integration sandbox.
type WebpayConfig struct {
	BaseURL      string
	CommerceCode string
	APIKey       string
}

// MailConfig drives the contact-notification mailer. Leaving FromEmail empty
// disables notifications entirely.
type MailConfig struct {
	FromEmail    string
	FromPassword string
	SMTPHost     string
	SMTPAddress  string
	ShopInbox    string
}

// StorageConfig names the S3 bucket game images are uploaded into. Empty
// disables the upload endpoint.
type StorageConfig struct {
	S3Bucket string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Webpay   WebpayConfig
	Mail     MailConfig
	Storage  StorageConfig
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// Load reads the environment (and a .env file when present) into a Config.
// All validation problems are collected and reported together so a broken
// deployment fails with the full list instead of one variable at a time.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var errs []string

	cfg := &Config{
		Server: ServerConfig{
			Port: getOptionalEnv("PORT", "5000"),
			Dev:  getOptionalEnv("APP_ENV", "development") == "development",
			AllowedOrigins: strings.Split(getOptionalEnv(
				"ALLOWED_ORIGINS",
				"http://localhost:3000,http://localhost:5173,http://localhost:8080",
			), ","),
		},
		Database: DatabaseConfig{
			DSN: getRequiredEnv("DATABASE_DSN", &errs),
		},
		Auth: AuthConfig{
			JWTSecret:     getRequiredEnv("JWT_SECRET", &errs),
			TokenDuration: 7 * 24 * time.Hour,
		},
		Webpay: WebpayConfig{
			BaseURL:      getOptionalEnv("WEBPAY_BASE_URL", "https://webpay3gint.transbank.cl"),
			CommerceCode: getOptionalEnv("WEBPAY_COMMERCE_CODE", "597055555532"),
			APIKey:       getOptionalEnv("WEBPAY_API_KEY", "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C"),
		},
		Mail: MailConfig{
			FromEmail:    getOptionalEnv("FROM_EMAIL", ""),
			FromPassword: getOptionalEnv("FROM_EMAIL_PASSWORD", ""),
			SMTPHost:     getOptionalEnv("FROM_EMAIL_SMTP", ""),
			SMTPAddress:  getOptionalEnv("SMTP_ADDRESS", ""),
			ShopInbox:    getOptionalEnv("CONTACT_INBOX", ""),
		},
		Storage: StorageConfig{
			S3Bucket: getOptionalEnv("S3_BUCKET", ""),
		},
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("config validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return cfg, nil
}

// MailEnabled reports whether the contact mailer has enough configuration to run.
func (m MailConfig) MailEnabled() bool {
	return m.FromEmail != "" && m.SMTPAddress != "" && m.ShopInbox != ""
}
