// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
)

const configName = "config.yaml"

// ConfigFile resolves the config file location.
//
// Lookup order:
//  1. explicit path, when non-empty (taken as-is, even if missing)
//  2. .alembic/config.yaml in the current directory
//  3. ~/.config/alembic/config.yaml
//
// Returns the first existing candidate; when none exist, the user
// config path is returned so a caller can create it there.
func ConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	local := filepath.Join(".alembic", configName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	return UserConfigFile()
}

// UserConfigFile returns the per-user config path under ~/.config,
// regardless of whether the file exists.
func UserConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".alembic", configName)
	}
	return filepath.Join(home, ".config", "alembic", configName)
}

// ResolveRegistry resolves a registry path from config relative to the
// directory holding the config file, so a config can name a registry
// that sits next to it. Absolute paths pass through untouched.
func ResolveRegistry(registry, configFile string) string {
	if registry == "" || filepath.IsAbs(registry) || configFile == "" {
		return registry
	}
	if _, err := os.Stat(registry); err == nil {
		return registry
	}
	sibling := filepath.Join(filepath.Dir(configFile), registry)
	if _, err := os.Stat(sibling); err == nil {
		return sibling
	}
	return registry
}
