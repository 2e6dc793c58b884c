package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppName string `envconfig:"APP_NAME" default:"TravelMate API"`
	Env     string `envconfig:"APP_ENV" default:"development"`
	Host    string `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port    int    `envconfig:"HTTP_PORT" default:"3000"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"data/travelmate.db"`

	CORSOrigins    []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"60s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`

	// EnforceSenderMembership makes appending a message require the sender to
	// be a participant of the chat. Off by default to keep the historical behaviour.
	EnforceSenderMembership bool `envconfig:"ENFORCE_SENDER_MEMBERSHIP" default:"false"`
}

// Load reads an optional .env file (or the given files) and then the environment.
// Values already present in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT out of range: %d", cfg.Port)
	}
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH is required")
	}

	return &cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
