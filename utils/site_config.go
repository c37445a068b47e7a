package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BrandColor maps a brand name fragment to the hex color of its label
type BrandColor struct {
	Match string `yaml:"match"`
	Color string `yaml:"color"`
}

// SiteConfig holds the editable site data: brand label colors and estimate form options
type SiteConfig struct {
	DefaultBrandColor string       `yaml:"default_brand_color"`
	BrandColors       []BrandColor `yaml:"brand_colors"`
	ReferralOptions   []string     `yaml:"referral_options"`
	CityOptions       []string     `yaml:"city_options"`
}

// DefaultSiteConfig returns the configuration used when no site config file is present
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		DefaultBrandColor: "#000000",
		BrandColors: []BrandColor{
			{Match: "belgard", Color: "#1A3057"},
			{Match: "keystone", Color: "#005596"},
			{Match: "las vegas", Color: "#842B38"},
			{Match: "lvp", Color: "#842B38"},
		},
		ReferralOptions: []string{"Facebook", "Google", "Instagram", "Friend", "Previous Customer", "Other"},
		CityOptions:     []string{"Las Vegas", "Henderson", "North Las Vegas", "Other"},
	}
}

// ParseSiteConfig decodes a yaml document. Missing sections keep their defaults.
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	cfg := DefaultSiteConfig()
	var file SiteConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}

	if file.DefaultBrandColor != "" {
		cfg.DefaultBrandColor = file.DefaultBrandColor
	}
	if len(file.BrandColors) > 0 {
		cfg.BrandColors = file.BrandColors
	}
	if len(file.ReferralOptions) > 0 {
		cfg.ReferralOptions = file.ReferralOptions
	}
	if len(file.CityOptions) > 0 {
		cfg.CityOptions = file.CityOptions
	}

	for i, bc := range cfg.BrandColors {
		if strings.TrimSpace(bc.Match) == "" || bc.Color == "" {
			return nil, fmt.Errorf("brand_colors[%d]: match and color are required", i)
		}
	}
	return cfg, nil
}

// LoadSiteConfig reads the site config from path, falling back to the defaults when the file does not exist
func LoadSiteConfig(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  Site config %s not found, using defaults", path)
			return DefaultSiteConfig(), nil
		}
		return nil, fmt.Errorf("failed to read site config %s: %w", path, err)
	}

	cfg, err := ParseSiteConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("✓ Site config loaded from %s (%d brand colors)", path, len(cfg.BrandColors))
	return cfg, nil
}

// IsReferralOption reports whether value is one of the configured referral sources
func (c *SiteConfig) IsReferralOption(value string) bool {
	return containsExact(c.ReferralOptions, value)
}

// IsCityOption reports whether value is one of the configured cities
func (c *SiteConfig) IsCityOption(value string) bool {
	return containsExact(c.CityOptions, value)
}

func containsExact(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
