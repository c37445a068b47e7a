package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBrandColor(t *testing.T) {
	t.Parallel()

	cfg := DefaultSiteConfig()
	tests := map[string]string{
		"Belgard":            "#1A3057",
		"BELGARD Commercial": "#1A3057",
		"Keystone":           "#005596",
		"Las Vegas Paver":    "#842B38",
		"LVP":                "#842B38",
		"Acme Stone":         "#000000",
		"":                   "#000000",
	}
	for brand, want := range tests {
		require.Equal(t, want, cfg.GetBrandColor(brand), brand)
	}
}

func TestParseSiteConfigOverridesSections(t *testing.T) {
	t.Parallel()

	cfg, err := ParseSiteConfig([]byte(`
brand_colors:
  - match: acme
    color: "#123456"
city_options: [Boulder City]
`))
	require.NoError(t, err)
	require.Equal(t, "#123456", cfg.GetBrandColor("Acme Pavers"))
	require.Equal(t, "#000000", cfg.GetBrandColor("Belgard"))
	require.True(t, cfg.IsCityOption("Boulder City"))
	require.False(t, cfg.IsCityOption("Henderson"))
	// untouched section keeps its defaults
	require.True(t, cfg.IsReferralOption("Previous Customer"))
}

func TestParseSiteConfigRejectsIncompleteBrandColor(t *testing.T) {
	t.Parallel()

	_, err := ParseSiteConfig([]byte("brand_colors:\n  - match: acme\n"))
	require.Error(t, err)

	_, err = ParseSiteConfig([]byte("brand_colors: [unclosed"))
	require.Error(t, err)
}

func TestLoadSiteConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := LoadSiteConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultSiteConfig(), cfg)

	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_brand_color: \"#FFFFFF\"\n"), 0o644))
	cfg, err = LoadSiteConfig(path)
	require.NoError(t, err)
	require.Equal(t, "#FFFFFF", cfg.GetBrandColor("unknown"))
}
