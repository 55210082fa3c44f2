// Package env provides the variable sources the configuration resolver
// merges: the process environment and .env-style files.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Vars is a string-to-string map of variables.
type Vars map[string]string

// FromOS snapshots the current process environment into a Vars map.
func FromOS() Vars {
	out := make(Vars)
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = parts[1]
	}
	return out
}

// Merge combines several Vars maps into one, later maps overriding earlier
// keys.
func Merge(sets ...Vars) Vars {
	out := make(Vars)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// LoadEnvFile loads a single .env-style file into Vars.
func LoadEnvFile(path string) (Vars, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	envMap, err := godotenv.Parse(f)
	if err != nil {
		return nil, err
	}
	out := make(Vars, len(envMap))
	for k, v := range envMap {
		out[k] = v
	}
	return out, nil
}

// LoadEnvFiles loads .env files and merges them in order, later files
// overriding earlier ones. Blank entries are skipped.
func LoadEnvFiles(paths []string) (Vars, error) {
	result := make(Vars)
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		vars, err := LoadEnvFile(path)
		if err != nil {
			return nil, fmt.Errorf("load env file %q: %w", path, err)
		}
		result = Merge(result, vars)
	}
	return result, nil
}
