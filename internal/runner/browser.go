package runner

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/shopcheck/internal/config"
)

// Browser hands out isolated tabs. Each call returns a page in a fresh browser
// context and the func that disposes of that context.
type Browser interface {
	NewPage() (playwright.Page, func() error, error)
}

// PlaywrightBrowser is a browser driven through a running playwright driver
type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Launch starts the playwright driver and launches the configured browser
func Launch(cfg config.BrowserConfig) (*PlaywrightBrowser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	var browserType playwright.BrowserType
	switch cfg.Browser {
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}

	browser, err := browserType.Launch(opts)
	if err != nil {
		if stopErr := pw.Stop(); stopErr != nil {
			log.Printf("Failed to stop playwright: %v", stopErr)
		}
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	log.Printf("Launched %s (headless=%t)", cfg.Browser, cfg.Headless)
	return &PlaywrightBrowser{pw: pw, browser: browser}, nil
}

// NewPage opens a tab in a new browser context so cookies and sessions stay private
func (b *PlaywrightBrowser) NewPage() (playwright.Page, func() error, error) {
	bctx, err := b.browser.NewContext()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, nil, fmt.Errorf("failed to open page: %w", err)
	}
	return page, func() error { return bctx.Close() }, nil
}

// Close shuts the browser and the driver down
func (b *PlaywrightBrowser) Close() error {
	if err := b.browser.Close(); err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	if err := b.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}
