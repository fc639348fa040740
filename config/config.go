package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Host string
	Port string

	MailUsername string
	MailPassword string
	SMTPHost     string
	SMTPPort     int

	EmailProvider  string
	AWSRegion      string
	SESSourceEmail string

	Environment string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "5000"),
		MailUsername:   getEnv("MAIL_USERNAME", ""),
		MailPassword:   getEnv("MAIL_PASSWORD", ""),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       smtpPort,
		EmailProvider:  getEnv("EMAIL_PROVIDER", "smtp"),
		AWSRegion:      getEnv("AWS_REGION", "eu-west-1"),
		SESSourceEmail: getEnv("SES_SOURCE_EMAIL", ""),
		Environment:    getEnv("APP_ENV", "development"),
	}, nil
}

// EmailConfigured reports whether outbound transport credentials are present.
func (c *Config) EmailConfigured() bool {
	return c.MailUsername != "" && c.MailPassword != ""
}

// IsProduction gates whether detailed transport errors may leave the service.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
