package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds the environment overrides read at startup.
type EnvConfig struct {
	APIURL       string `env:"RACREC_API_URL"`
	Host         string `env:"RACREC_HOST" envDefault:"localhost"`
	APIPort      int    `env:"RACREC_API_PORT" envDefault:"5000"`
	StartRoute   string `env:"RACREC_START_ROUTE"`
	StrictPixels bool   `env:"RACREC_STRICT_PIXELS"`
	DebugOverlay bool   `env:"RACREC_DEBUG"`
}

// APIBaseURL returns the explicit API URL, or one derived from the host.
func (e EnvConfig) APIBaseURL() string {
	if e.APIURL != "" {
		return strings.TrimRight(e.APIURL, "/")
	}
	return fmt.Sprintf("http://%s:%d/api", e.Host, e.APIPort)
}

// ParseEnv loads EnvConfig from the process environment.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ApplyEnv copies environment overrides into the global configuration.
func ApplyEnv(e EnvConfig) {
	Gallery.BaseURL = e.APIBaseURL()
	if e.StartRoute != "" {
		Debug.StartRoute = e.StartRoute
	}
	Debug.StrictPixels = e.StrictPixels
	Debug.Overlay = e.DebugOverlay
}
