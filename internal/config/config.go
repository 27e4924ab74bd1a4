package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is parsed from AMARKTAI_-prefixed environment variables (a .env
// file is loaded first when present).
type Config struct {
	AppName string `envconfig:"APP_NAME" default:"amarktai-marketing"`
	Port    int    `envconfig:"PORT" default:"18911"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`

	// ClerkPublishableKey decides the auth mode: a pk_-prefixed value selects
	// provider-backed sessions, anything else falls back to local demo auth.
	ClerkPublishableKey string `envconfig:"CLERK_PUBLISHABLE_KEY" default:""`

	// LatencyScale multiplies every simulated delay; 0 disables them.
	LatencyScale float64 `envconfig:"MOCK_LATENCY_SCALE" default:"1.0"`

	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`

	PosterEnabled         bool `envconfig:"POSTER_ENABLED" default:"true"`
	PosterIntervalSeconds int  `envconfig:"POSTER_INTERVAL_SECONDS" default:"30"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("AMARKTAI", &c); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return c, nil
}
