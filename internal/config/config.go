package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

// Config holds the chart generation settings. Every field can be set from the
// environment with the POLICYPLOT_ prefix and overridden by command line flags.
type Config struct {
	SummaryPath   string  `envconfig:"SUMMARY_PATH" default:"results/evaluation_policy_summary.csv"`
	OutputDir     string  `envconfig:"OUTPUT_DIR" default:"results"`
	Format        string  `envconfig:"FORMAT" default:"png"`
	DPI           int     `envconfig:"DPI" default:"300"`
	WidthInches   float64 `envconfig:"WIDTH_IN" default:"8"`
	HeightInches  float64 `envconfig:"HEIGHT_IN" default:"5"`
	UnknownPolicy string  `envconfig:"UNKNOWN_POLICY" default:"ciavmp"`
	Manifest      bool    `envconfig:"MANIFEST" default:"true"`
	Show          bool    `envconfig:"SHOW" default:"false"`

	OTel OTelConfig `envconfig:"OTEL"`
}

// OTelConfig controls metrics export, read from POLICYPLOT_OTEL_*.
type OTelConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Endpoint string `envconfig:"ENDPOINT"`
	Insecure bool   `envconfig:"INSECURE" default:"false"`
}

const envPrefix = "POLICYPLOT"

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that envconfig cannot express as tags.
func (c *Config) Validate() error {
	if c.SummaryPath == "" {
		return fmt.Errorf("summary path must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	switch c.Format {
	case "png", "jpg", "svg", "pdf":
	default:
		return fmt.Errorf("unsupported format %q (use png, jpg, svg or pdf)", c.Format)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.WidthInches <= 0 || c.HeightInches <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g in", c.WidthInches, c.HeightInches)
	}
	if _, err := domain.ParseUnknownPolicyMode(c.UnknownPolicy); err != nil {
		return err
	}
	return nil
}

// UnknownPolicyMode returns the parsed fallback mode. Call Validate first.
func (c *Config) UnknownPolicyMode() domain.UnknownPolicyMode {
	mode, err := domain.ParseUnknownPolicyMode(c.UnknownPolicy)
	if err != nil {
		return domain.UnknownAsCIAVMP
	}
	return mode
}
