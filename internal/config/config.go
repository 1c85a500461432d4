package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	HTTPServer
	Database
	SMTP
}

type HTTPServer struct {
	Port int `env:"PORT" env-default:"8080"`
}

type Database struct {
	// URL selects PostgreSQL when set; SQLite is used otherwise.
	URL        string `env:"DATABASE_URL"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"backoffice.db"`
}

type SMTP struct {
	Host     string `env:"SMTP_HOST" env-default:"localhost"`
	Port     int    `env:"SMTP_PORT" env-default:"465"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM" env-default:"noreply@backoffice.local"`
}

// MustLoad reads configuration from the environment, loading .env first when
// present, and exits on malformed values.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env file not found, using environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("config: cannot read environment: %s", err)
	}

	return &cfg
}
