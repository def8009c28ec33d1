// Package config reads the site's settings from the environment.
package config

import (
	"time"

	"github.com/Ayush27641/portfolio/internal/contact"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Admin holds the dashboard credentials.
type Admin struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

// UsesDefaults reports whether either credential is still the development default.
func (a Admin) UsesDefaults() bool {
	return a.Username == defaultAdminUsername || a.Password == defaultAdminPassword
}

// Config is the full site configuration.
type Config struct {
	Port             string        `env:"PORT"              envDefault:"8080"`
	Mode             string        `env:"GIN_MODE"          envDefault:"debug"`
	DBPath           string        `env:"PORTFOLIO_DB"      envDefault:"data/portfolio.db"`
	ContentPath      string        `env:"PORTFOLIO_CONTENT"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	SMTP             contact.Config
	Admin            Admin
}

// Load parses the environment. Values from a .env file are already in
// the environment when godotenv/autoload is imported by main.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if cfg.VisitorRetention <= 0 {
		return Config{}, errors.Errorf("VISITOR_RETENTION must be positive, got %s", cfg.VisitorRetention)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
