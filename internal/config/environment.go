package config

import (
	"fmt"
	"strings"
)

// Environment selects which backend project a build talks to.
type Environment string

const (
	// Development is the environment used by local builds and simulators.
	Development Environment = "development"
	// Staging is the pre-release environment used by internal testers.
	Staging Environment = "staging"
	// Production is the environment shipped to the app stores.
	Production Environment = "production"
)

// Environments returns every supported environment in fixed order.
func Environments() []Environment {
	return []Environment{Development, Staging, Production}
}

// ParseEnvironment converts a textual environment name into an Environment.
// Names are matched case-insensitively with surrounding whitespace ignored;
// anything outside the supported set is an error.
func ParseEnvironment(value string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(value))) {
	case Development:
		return Development, nil
	case Staging:
		return Staging, nil
	case Production:
		return Production, nil
	default:
		return "", fmt.Errorf("unknown environment %q (expected development, staging or production)", value)
	}
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool {
	return e == Staging
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}
