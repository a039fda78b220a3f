package app

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Locale drives currency and number rendering on printable views.
	Locale string `envconfig:"LOCALE" default:"en-IN"`

	DashboardRecentOrders int `envconfig:"DASHBOARD_RECENT_ORDERS" default:"5"`
	DashboardTopClients   int `envconfig:"DASHBOARD_TOP_CLIENTS" default:"5"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DashboardRecentOrders <= 0 || cfg.DashboardTopClients <= 0 {
		return nil, errors.New("dashboard limits must be positive")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
