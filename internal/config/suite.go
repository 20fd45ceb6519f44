package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// CheckoutMode controls how far the end-to-end flow goes once the cart is verified.
type CheckoutMode string

// Checkout modes
const (
	CheckoutSkip   CheckoutMode = "skip"
	CheckoutFill   CheckoutMode = "fill"
	CheckoutAssert CheckoutMode = "assert"
)

// ErrInvalidCheckoutMode is returned for an unknown CHECKOUT_MODE value
var ErrInvalidCheckoutMode = errors.New("checkout mode must be one of skip, fill, assert")

// ParseCheckoutMode converts a raw value into a CheckoutMode. An empty value means skip.
func ParseCheckoutMode(raw string) (CheckoutMode, error) {
	switch CheckoutMode(raw) {
	case "", CheckoutSkip:
		return CheckoutSkip, nil
	case CheckoutFill, CheckoutAssert:
		return CheckoutMode(raw), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidCheckoutMode, raw)
	}
}

// TestConfig holds the values every scenario reads. It is built once per run and
// passed by pointer; nothing mutates it after LoadTestConfig returns.
type TestConfig struct {
	AppURL          string
	Email           string
	Password        string
	ProductName     string
	ProductQuantity string
	TotalPrice      string
	Checkout        CheckoutMode
}

// Defaults for the demo shop catalog
const (
	DefaultAppURL          = "http://localhost:8080/"
	DefaultProductName     = "MacBook"
	DefaultProductQuantity = "4"
	DefaultTotalPrice      = "$2,408.00"
)

// LoadTestConfig loads the suite configuration from environment variables
func LoadTestConfig(getenv func(string) string) (*TestConfig, error) {
	config := &TestConfig{
		AppURL:          getenv("APP_URL"),
		Email:           getenv("SHOP_EMAIL"),
		Password:        getenv("SHOP_PASSWORD"),
		ProductName:     getenv("PRODUCT_NAME"),
		ProductQuantity: getenv("PRODUCT_QUANTITY"),
		TotalPrice:      getenv("TOTAL_PRICE"),
	}

	if config.AppURL == "" {
		config.AppURL = DefaultAppURL
	}
	if config.ProductName == "" {
		config.ProductName = DefaultProductName
	}
	if config.ProductQuantity == "" {
		config.ProductQuantity = DefaultProductQuantity
	}
	if config.TotalPrice == "" {
		config.TotalPrice = DefaultTotalPrice
	}

	mode, err := ParseCheckoutMode(getenv("CHECKOUT_MODE"))
	if err != nil {
		return nil, err
	}
	config.Checkout = mode

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the fields a run cannot start without
func (c *TestConfig) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("SHOP_EMAIL is required")
	}
	if c.Password == "" {
		return fmt.Errorf("SHOP_PASSWORD is required")
	}

	u, err := url.Parse(c.AppURL)
	if err != nil {
		return fmt.Errorf("APP_URL is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("APP_URL must be an absolute http(s) URL, got %q", c.AppURL)
	}

	qty, err := strconv.Atoi(c.ProductQuantity)
	if err != nil || qty <= 0 {
		return fmt.Errorf("PRODUCT_QUANTITY must be a positive integer, got %q", c.ProductQuantity)
	}
	return nil
}

// Clone returns an independent copy
func (c *TestConfig) Clone() *TestConfig {
	cp := *c
	return &cp
}

// WithAppURL returns a copy of the config pointing at another shop
func (c *TestConfig) WithAppURL(appURL string) *TestConfig {
	cp := *c
	cp.AppURL = appURL
	return &cp
}
