// Package config resolves the active deployment environment and exposes the
// backend connection parameters scoped to it. A Config is built once at
// startup via Load and handed to consumers by injection; it never mutates.
package config

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// Config is the resolved, immutable application configuration.
type Config struct {
	environment Environment
	backend     Backend
}

// Environment returns the active deployment environment.
func (c *Config) Environment() Environment {
	return c.environment
}

// BackendURL returns the backend base URL for the active environment.
func (c *Config) BackendURL() string {
	return c.backend.URL
}

// BackendPublishableKey returns the client-side API key for the active
// environment.
func (c *Config) BackendPublishableKey() string {
	return c.backend.PublishableKey
}

// Valid reports whether the resolved configuration is usable: the backend
// URL parses as an absolute URL and the publishable key is non-empty. It is
// a pure read with no error path; callers wanting a diagnosis use Check.
func (c *Config) Valid() bool {
	u, err := url.Parse(c.backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return c.backend.PublishableKey != ""
}

// validate is the shared validator used by Check. Validator instances are
// safe for concurrent use and cache struct metadata across calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates the full backend contract and explains any violation:
// the URL must be well-formed and live under the Supabase domain, and the
// key must carry the publishable prefix. nil means the configuration meets
// the contract Valid answers for, plus the domain and prefix rules.
func (c *Config) Check() error {
	if err := validate.Struct(c.backend); err != nil {
		return fmt.Errorf("backend configuration for %s: %w", c.environment, err)
	}
	return nil
}
