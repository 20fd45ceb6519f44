package config

import (
	"fmt"
	"strconv"
	"time"
)

// BrowserConfig selects and tunes the browser the runner launches
type BrowserConfig struct {
	Browser  string
	Headless bool
	SlowMo   time.Duration
}

// LoadBrowserConfig loads browser settings from environment variables
func LoadBrowserConfig(getenv func(string) string) (BrowserConfig, error) {
	config := BrowserConfig{
		Browser:  getenv("BROWSER"),
		Headless: true,
	}

	switch config.Browser {
	case "":
		config.Browser = "chromium"
	case "chromium", "firefox", "webkit":
	default:
		return BrowserConfig{}, fmt.Errorf("BROWSER must be chromium, firefox or webkit, got %q", config.Browser)
	}

	if raw := getenv("HEADLESS"); raw != "" {
		headless, err := strconv.ParseBool(raw)
		if err != nil {
			return BrowserConfig{}, fmt.Errorf("HEADLESS is invalid: %w", err)
		}
		config.Headless = headless
	}

	if raw := getenv("SLOW_MO"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return BrowserConfig{}, fmt.Errorf("SLOW_MO is invalid: %w", err)
		}
		config.SlowMo = d
	}

	return config, nil
}
