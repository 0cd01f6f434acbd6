package config

import (
	"testing"
	"time"

	"ridesharing/internal/domain/entities"
)

func TestNewDefaultConfig_FareTable(t *testing.T) {
	table, err := NewDefaultConfig().FareTable()
	if err != nil {
		t.Fatalf("FareTable failed: %v", err)
	}

	tests := []struct {
		variant entities.RideVariant
		rate    float64
		label   string
	}{
		{entities.RideVariantStandard, 1.50, "Standard Ride"},
		{entities.RideVariantPremium, 3.00, "Premium Ride"},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			policy, err := table.Policy(tt.variant)
			if err != nil {
				t.Fatalf("Policy failed: %v", err)
			}
			if policy.Rate != tt.rate || policy.Label != tt.label {
				t.Errorf("Expected {%v %s}, got %+v", tt.rate, tt.label, policy)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != ":8080" {
		t.Errorf("Expected port :8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Expected read timeout 10s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Pricing.PremiumRate != 3.00 {
		t.Errorf("Expected premium rate 3.00, got %v", cfg.Pricing.PremiumRate)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RIDESHARE_SERVER_PORT", ":9090")
	t.Setenv("RIDESHARE_PRICING_PREMIUM_RATE", "4.25")
	t.Setenv("RIDESHARE_PRICING_STANDARD_LABEL", "Economy Ride")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != ":9090" {
		t.Errorf("Expected port :9090, got %s", cfg.Server.Port)
	}

	table, _ := cfg.FareTable()
	if table[entities.RideVariantPremium].Rate != 4.25 {
		t.Errorf("Expected premium rate 4.25, got %v", table[entities.RideVariantPremium].Rate)
	}
	if table[entities.RideVariantStandard].Label != "Economy Ride" {
		t.Errorf("Expected standard label Economy Ride, got %s", table[entities.RideVariantStandard].Label)
	}
}

func TestLoad_RejectsNonPositiveRate(t *testing.T) {
	t.Setenv("RIDESHARE_PRICING_STANDARD_RATE", "0")

	if _, err := Load(); err == nil {
		t.Error("Expected error for zero standard rate")
	}
}
