package config

import (
	"fmt"
	"time"
)

// WaitConfig bounds every browser interaction. Actions and queries give up after
// Timeout; text queries that expect content re-check every PollInterval.
type WaitConfig struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// Wait defaults
const (
	DefaultWaitTimeout  = 10 * time.Second
	DefaultPollInterval = 100 * time.Millisecond
)

// DefaultWaitConfig returns the wait contract used when nothing is configured
func DefaultWaitConfig() WaitConfig {
	return WaitConfig{Timeout: DefaultWaitTimeout, PollInterval: DefaultPollInterval}
}

// LoadWaitConfig loads the wait contract from environment variables
func LoadWaitConfig(getenv func(string) string) (WaitConfig, error) {
	config := DefaultWaitConfig()

	if raw := getenv("WAIT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return WaitConfig{}, fmt.Errorf("WAIT_TIMEOUT is invalid: %w", err)
		}
		config.Timeout = d
	}
	if raw := getenv("WAIT_POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return WaitConfig{}, fmt.Errorf("WAIT_POLL_INTERVAL is invalid: %w", err)
		}
		config.PollInterval = d
	}

	if err := config.Validate(); err != nil {
		return WaitConfig{}, err
	}
	return config, nil
}

// Validate checks that both durations are positive and that polling fits inside the
// timeout. Playwright counts in whole milliseconds and reads 0 as no timeout, so the
// timeout must be at least a millisecond.
func (w WaitConfig) Validate() error {
	if w.Timeout < time.Millisecond {
		return fmt.Errorf("wait timeout must be at least 1ms, got %s", w.Timeout)
	}
	if w.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", w.PollInterval)
	}
	if w.PollInterval > w.Timeout {
		return fmt.Errorf("poll interval %s exceeds timeout %s", w.PollInterval, w.Timeout)
	}
	return nil
}

// TimeoutMillis returns the timeout in the unit playwright expects
func (w WaitConfig) TimeoutMillis() float64 {
	return float64(w.Timeout.Milliseconds())
}
