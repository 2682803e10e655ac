package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Configured reports whether the SMTP transport has credentials. The mailer
// prefers SMTP and falls back to the Resend API otherwise.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Password != ""
}

type Config struct {
	Port            string
	MySQL           MySQLConfig
	RedisHost       string
	RabbitMQURL     string
	SMTP            SMTPConfig
	ResendAPIKey    string
	AdminEmail      string
	AdminPassword   string
	SessionSecret   string
	ShopName        string
	InvoiceFontPath string
}

// Load reads the environment (plus an optional .env file) into a Config.
// Called once in main; the result is passed down explicitly.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getenv("PORT", "8080"),
		MySQL: MySQLConfig{
			User:     os.Getenv("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Host:     getenv("MYSQL_HOST", "127.0.0.1"),
			Port:     getenv("MYSQL_PORT", "3306"),
			Database: getenv("MYSQL_DATABASE", "shop"),
		},
		RedisHost:   os.Getenv("REDIS_HOST"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenvInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:   getenv("SESSION_SECRET", "default-secret-key"),
		ShopName:        getenv("SHOP_NAME", "Nuna Gom"),
		InvoiceFontPath: os.Getenv("INVOICE_FONT_PATH"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
