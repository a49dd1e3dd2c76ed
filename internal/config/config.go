package config

import (
	"os"
	"strconv"
)

// ScrapeConfig contains general scraping configuration
type ScrapeConfig struct {
	UserAgent      string
	TimeoutMs      int
	SizeLimitBytes int
}

// ServerConfig contains configuration for the HTTP service layer
type ServerConfig struct {
	Port      string
	DataDir   string
	StaticDir string
}

// DefaultScrapeConfig returns the default scraping configuration,
// with environment variable overrides.
func DefaultScrapeConfig() ScrapeConfig {
	userAgent := os.Getenv("SCRAPE_USER_AGENT")
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}

	timeoutMs := 15000
	if env := os.Getenv("SCRAPE_TIMEOUT_MS"); env != "" {
		if parsed, err := strconv.Atoi(env); err == nil && parsed > 0 {
			timeoutMs = parsed
		}
	}

	sizeLimit := 6_000_000
	if env := os.Getenv("SCRAPE_SIZE_LIMIT"); env != "" {
		if parsed, err := strconv.Atoi(env); err == nil && parsed > 0 {
			sizeLimit = parsed
		}
	}

	return ScrapeConfig{
		UserAgent:      userAgent,
		TimeoutMs:      timeoutMs,
		SizeLimitBytes: sizeLimit,
	}
}

// DefaultServerConfig returns the default server configuration,
// with environment variable overrides.
func DefaultServerConfig() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "scraped_data"
	}

	return ServerConfig{
		Port:      port,
		DataDir:   dataDir,
		StaticDir: os.Getenv("STATIC_DIR"),
	}
}
