// Package config provides configuration types, defaults, and
// persistence for alembic.
package config

import (
	"alembic/internal/settings"
)

// FormatConfig holds the output formatting options.
type FormatConfig struct {
	// Indent is how many space characters precede ingredient names.
	// Effect lines get one additional level.
	Indent int `mapstructure:"indent"`

	// Precision is the number of decimal places for magnitudes.
	Precision int `mapstructure:"precision"`

	// Color enables colored effect names.
	Color bool `mapstructure:"color"`
}

// Config holds all configuration options for alembic.
type Config struct {
	// Registry is the path to the ingredient registry file.
	Registry string `mapstructure:"registry"`

	Format FormatConfig `mapstructure:"format"`

	// Colors overrides individual palette tokens with hex values,
	// e.g. "effect.negative": "#FF0000".
	Colors map[string]string `mapstructure:"colors"`

	GameSettings settings.GameSettings `mapstructure:"gamesettings"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Registry: "ingredients.txt",
		Format: FormatConfig{
			Indent:    3,
			Precision: 2,
			Color:     true,
		},
		GameSettings: settings.Defaults(),
	}
}
