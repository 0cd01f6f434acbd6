// Package config centralizes all application configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Go projects typically manage configuration in one of these ways:
//  1. Struct literals with defaults (NewDefaultConfig below)
//  2. Environment variables via os.Getenv() or "github.com/kelseyhightower/envconfig"
//  3. Config files (YAML/TOML) via "github.com/spf13/viper"
//  4. Command-line flags via the standard "flag" package
//
// This package combines 1 and 3: the struct literal supplies defaults, and
// Load() lets viper override them from an optional ridesharing.yaml file and
// RIDESHARE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"ridesharing/internal/domain/entities"
)

// EnvPrefix is prepended to every environment variable Load() reads, e.g.
// RIDESHARE_PRICING_PREMIUM_RATE.
const EnvPrefix = "RIDESHARE"

// Config is the top-level configuration container.
//
// Go Learning Note — Struct Composition:
// Go doesn't have classes or inheritance. Instead, you compose structs by
// nesting them. Here Config "has a" ServerConfig and a PricingConfig.
type Config struct {
	Server  ServerConfig
	Pricing PricingConfig
}

// ServerConfig holds HTTP server settings.
//
// Go Learning Note — time.Duration:
// Go uses time.Duration (an int64 of nanoseconds) instead of raw integers for
// timeouts. "10 * time.Second" is self-documenting; a bare "10" is not.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PricingConfig defines the per-mile rate and report label of each ride variant.
// Fare = Distance * Rate, computed only when a ride's CalculateFare is called.
type PricingConfig struct {
	StandardRate  float64
	StandardLabel string
	PremiumRate   float64
	PremiumLabel  string
}

// NewDefaultConfig returns a Config populated with sensible defaults.
func NewDefaultConfig() *Config {
	defaults := entities.DefaultFareTable()
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Pricing: PricingConfig{
			StandardRate:  defaults[entities.RideVariantStandard].Rate,
			StandardLabel: defaults[entities.RideVariantStandard].Label,
			PremiumRate:   defaults[entities.RideVariantPremium].Rate,
			PremiumLabel:  defaults[entities.RideVariantPremium].Label,
		},
	}
}

// Load returns the default configuration overlaid with ridesharing.yaml (if
// one exists in the working directory) and RIDESHARE_* environment variables.
// A missing file is not an error; a malformed one is.
//
// Go Learning Note — viper Instances:
// viper exposes both package-level functions (viper.GetString) backed by a
// global instance, and viper.New() for an isolated one. A private instance
// keeps tests independent of each other and of anything else in the process.
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	v := viper.New()
	v.SetConfigName("ridesharing")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("pricing.standard_rate", cfg.Pricing.StandardRate)
	v.SetDefault("pricing.standard_label", cfg.Pricing.StandardLabel)
	v.SetDefault("pricing.premium_rate", cfg.Pricing.PremiumRate)
	v.SetDefault("pricing.premium_label", cfg.Pricing.PremiumLabel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.Server.Port = v.GetString("server.port")
	cfg.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	cfg.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	cfg.Pricing.StandardRate = v.GetFloat64("pricing.standard_rate")
	cfg.Pricing.StandardLabel = v.GetString("pricing.standard_label")
	cfg.Pricing.PremiumRate = v.GetFloat64("pricing.premium_rate")
	cfg.Pricing.PremiumLabel = v.GetString("pricing.premium_label")

	if _, err := cfg.FareTable(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FareTable builds the per-variant fare table from the pricing settings and
// validates that every variant has a positive rate and a label.
func (c *Config) FareTable() (entities.FareTable, error) {
	table := entities.FareTable{
		entities.RideVariantStandard: {Rate: c.Pricing.StandardRate, Label: c.Pricing.StandardLabel},
		entities.RideVariantPremium:  {Rate: c.Pricing.PremiumRate, Label: c.Pricing.PremiumLabel},
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("pricing config: %w", err)
	}
	return table, nil
}
