package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Zones: fixed, ordered venue partitions, 1:1 with camera streams.
	ZoneNames  []string `envconfig:"ZONE_NAMES" default:"Zone A,Zone B,Zone C,Zone D"`
	CameraURLs []string `envconfig:"CAMERA_URLS"`

	// Camera
	CameraSource   string `envconfig:"CAMERA_SOURCE" default:"synthetic"`
	FrameMaxWidth  int    `envconfig:"FRAME_MAX_WIDTH" default:"1280"`
	FrameMaxHeight int    `envconfig:"FRAME_MAX_HEIGHT" default:"720"`

	// Analysis gateway
	GatewayProvider   string `envconfig:"GATEWAY_PROVIDER" default:"genai"`
	GatewayURL        string `envconfig:"GATEWAY_URL" default:"http://localhost:8090"`
	GatewayTimeoutSec int    `envconfig:"GATEWAY_TIMEOUT_SECONDS" default:"30"`
	AWSRegion         string `envconfig:"AWS_REGION" default:"us-east-1"`

	// Escalation
	EmergencyNumber string `envconfig:"EMERGENCY_NUMBER" default:"9597428005"`
	TelephonyURL    string `envconfig:"TELEPHONY_URL"`
	SirenURL        string `envconfig:"SIREN_URL"`

	// Matching
	MatchConfidenceThreshold float64 `envconfig:"MATCH_CONFIDENCE_THRESHOLD" default:"0.7"`

	// Aggregation windows
	AlertLogCap       int `envconfig:"ALERT_LOG_CAP" default:"50"`
	DensityHistoryCap int `envconfig:"DENSITY_HISTORY_CAP" default:"20"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.ZoneNames) == 0 {
		return fmt.Errorf("at least one zone must be configured")
	}
	if len(c.CameraURLs) > 0 && len(c.CameraURLs) != len(c.ZoneNames) {
		return fmt.Errorf("CAMERA_URLS must match ZONE_NAMES: got %d urls for %d zones",
			len(c.CameraURLs), len(c.ZoneNames))
	}
	if c.MatchConfidenceThreshold < 0 || c.MatchConfidenceThreshold > 1 {
		return fmt.Errorf("MATCH_CONFIDENCE_THRESHOLD must be between 0 and 1")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
