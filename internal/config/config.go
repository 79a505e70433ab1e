package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Librarium"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"librarium"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	JWT struct {
		Secret string        `envconfig:"JWT_SECRET" default:"change-me"`
		TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
	}

	SMTP struct {
		Host     string `envconfig:"SMTP_HOST" default:"localhost"`
		Port     int    `envconfig:"SMTP_PORT" default:"587"`
		Username string `envconfig:"SMTP_USERNAME"`
		Password string `envconfig:"SMTP_PASSWORD"`
		From     string `envconfig:"SMTP_FROM" default:"library@localhost"`
	}

	GoogleBooks struct {
		BaseURL string `envconfig:"GOOGLE_BOOKS_BASE_URL" default:"https://www.googleapis.com/books/v1"`
		APIKey  string `envconfig:"GOOGLE_BOOKS_API_KEY"`
	}

	// Loan holds the lending policy. Injected into the borrowing engine
	// so tests can shorten the period without touching logic.
	Loan struct {
		PeriodDays     int           `envconfig:"LOAN_PERIOD_DAYS" default:"7"`
		FinePerDay     float64       `envconfig:"LOAN_FINE_PER_DAY" default:"10.0"`
		MaxUnpaidFines float64       `envconfig:"LOAN_MAX_UNPAID_FINES" default:"1000.0"`
		ScanInterval   time.Duration `envconfig:"LOAN_SCAN_INTERVAL" default:"24h"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) SMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.SMTP.Host, c.SMTP.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
