package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/NH-Homelab/subscription-report/internal/pg_db"
)

type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"third-party-application"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	ReportStrategy string `env:"REPORT_STRATEGY" envDefault:"memory"`

	HTTPAddr  string `env:"HTTP_ADDR"`
	JWTSecret string `env:"JWT_SECRET"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the optional .env files, then parses the environment. Variables
// already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Postgres() pg_db.Pg_Config {
	return pg_db.Pg_Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Dbname:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}
