package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings read from the environment
type Config struct {
	Port                  string
	BaseURL               string
	ImagesDir             string
	CacheDir              string
	CredentialsPath       string
	ProductImagesFolderID string
	SiteConfigPath        string
	GallerySessionTTL     time.Duration
	GalleryMaxSessions    int
	ChromePath            string
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads the configuration from environment variables, applying defaults
func LoadConfig() (*Config, error) {
	// PORT from Render doesn't include the leading colon, local .env files sometimes do
	port := strings.TrimPrefix(getEnv("PORT", "8080"), ":")

	cfg := &Config{
		Port:                  port,
		BaseURL:               strings.TrimSuffix(getEnv("BASE_URL", "http://localhost:"+port), "/"),
		ImagesDir:             getEnv("IMAGES_DIR", "public/images"),
		CacheDir:              getEnv("CACHE_DIR", "cache/images"),
		CredentialsPath:       getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		ProductImagesFolderID: getEnv("PRODUCT_IMAGES_FOLDER_ID", ""),
		SiteConfigPath:        getEnv("SITE_CONFIG", "config/site.yaml"),
		GallerySessionTTL:     30 * time.Minute,
		ChromePath:            getEnv("CHROME_PATH", ""),
	}

	if ttl := getEnv("GALLERY_SESSION_TTL", ""); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid GALLERY_SESSION_TTL %q: expected a positive duration such as 30m", ttl)
		}
		cfg.GallerySessionTTL = d
	}

	if limit := getEnv("GALLERY_MAX_SESSIONS", ""); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid GALLERY_MAX_SESSIONS %q: expected a positive integer", limit)
		}
		cfg.GalleryMaxSessions = n
	}

	return cfg, nil
}

// Addr returns the listen address. 0.0.0.0 accepts connections from all interfaces (required for Docker/Render).
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
