package config

import (
	"fmt"
	"os"

	envparse "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/stridelab/coachcfg/internal/env"
)

// Options describes the sources consulted when resolving a Config.
type Options struct {
	// Env is the requested environment name. Empty falls back to the
	// COACH_ENV variable, then to development.
	Env string
	// EnvFiles lists .env files merged in order before process variables.
	EnvFiles []string
	// Overrides is an optional YAML file with per-environment backend
	// overrides, applied before variable-based overrides.
	Overrides string
	// Lookup replaces the process environment snapshot. Nil means
	// env.FromOS; tests inject fixed maps here.
	Lookup env.Vars
}

// backendVars captures the COACH_* variables that override backend settings.
type backendVars struct {
	// Env is the environment name from COACH_ENV.
	Env string `env:"COACH_ENV"`
	// URL is the backend base URL from COACH_BACKEND_URL.
	URL string `env:"COACH_BACKEND_URL"`
	// PublishableKey is the API key from COACH_BACKEND_PUBLISHABLE_KEY.
	PublishableKey string `env:"COACH_BACKEND_PUBLISHABLE_KEY"`
}

// overridesFile mirrors the optional overrides YAML document.
type overridesFile struct {
	Environments map[string]Backend `yaml:"environments"`
}

// Load resolves the configuration for one environment. Sources are layered
// with later sources winning: built-in defaults, the overrides file, .env
// files, then process variables.
func Load(opts Options) (*Config, error) {
	for _, environment := range Environments() {
		if _, ok := defaultBackends[environment]; !ok {
			return nil, fmt.Errorf("no default backend defined for environment %q", environment)
		}
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = env.FromOS()
	}

	fileVars, err := env.LoadEnvFiles(opts.EnvFiles)
	if err != nil {
		return nil, err
	}
	merged := env.Merge(fileVars, lookup)

	var vars backendVars
	if err := envparse.ParseWithOptions(&vars, envparse.Options{Environment: merged}); err != nil {
		return nil, fmt.Errorf("parse COACH_* variables: %w", err)
	}

	name := opts.Env
	if name == "" {
		name = vars.Env
	}
	if name == "" {
		name = string(Development)
	}

	environment, err := ParseEnvironment(name)
	if err != nil {
		return nil, err
	}

	backend := defaultBackends[environment]

	if opts.Overrides != "" {
		fileBackend, err := loadOverrides(opts.Overrides, environment)
		if err != nil {
			return nil, err
		}
		backend = overlay(backend, fileBackend)
	}

	backend = overlay(backend, Backend{URL: vars.URL, PublishableKey: vars.PublishableKey})

	return &Config{environment: environment, backend: backend}, nil
}

// loadOverrides reads the overrides YAML file and returns the backend block
// for the given environment, zero-valued when the file has no entry for it.
func loadOverrides(path string, environment Environment) (Backend, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Backend{}, fmt.Errorf("read overrides %q: %w", path, err)
	}

	var doc overridesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Backend{}, fmt.Errorf("parse overrides %q: %w", path, err)
	}

	return doc.Environments[string(environment)], nil
}

// overlay returns base with the non-empty fields of over applied on top.
func overlay(base, over Backend) Backend {
	if over.URL != "" {
		base.URL = over.URL
	}
	if over.PublishableKey != "" {
		base.PublishableKey = over.PublishableKey
	}
	return base
}
