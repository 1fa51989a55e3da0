package cliconfig

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/hdrs/internal/domain"
)

// Config holds CLI configuration for hdrs.
type Config struct {
	URL    string
	Method string

	Timeout   time.Duration
	UserAgent string
	Proxy     string
	LogLevel  string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Method:   "get",
		LogLevel: "warn",
	}
}

// Validate checks the configuration for errors.
// Problems with the method or URL are reported as *domain.UsageError.
func (c *Config) Validate() error {
	if _, err := domain.ParseMethod(c.Method); err != nil {
		return err
	}
	if c.URL == "" {
		return domain.NewUsageError("URL is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.Proxy != "" {
		if _, err := url.Parse(c.Proxy); err != nil {
			return fmt.Errorf("parse proxy: %w", err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty value means warn.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log-level: %w", err)
	}
	return lvl, nil
}

// Invocation builds the validated (method, url) pair.
func (c *Config) Invocation() (domain.Invocation, error) {
	m, err := domain.ParseMethod(c.Method)
	if err != nil {
		return domain.Invocation{}, err
	}
	return domain.NewInvocation(m, c.URL)
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
