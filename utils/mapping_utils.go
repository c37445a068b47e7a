package utils

import "strings"

// GetBrandColor maps a brand name to the hex color of its label.
// Matching is case-insensitive on substrings, first configured match wins.
func (c *SiteConfig) GetBrandColor(brand string) string {
	normalized := strings.ToLower(strings.TrimSpace(brand))
	if normalized != "" {
		for _, bc := range c.BrandColors {
			if strings.Contains(normalized, strings.ToLower(bc.Match)) {
				return bc.Color
			}
		}
	}
	return c.DefaultBrandColor
}
