package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDoc mirrors Config with yaml tags for writing the default
// config file. Viper reads it back through the mapstructure tags on
// Config.
type configDoc struct {
	Registry string `yaml:"registry"`
	Format   struct {
		Indent    int  `yaml:"indent"`
		Precision int  `yaml:"precision"`
		Color     bool `yaml:"color"`
	} `yaml:"format"`
	GameSettings struct {
		AlchemySkill   float64 `yaml:"alchemy_skill"`
		IngredientMult float64 `yaml:"ingredient_mult"`
		SkillFactor    float64 `yaml:"skill_factor"`
		FortifyAlchemy float64 `yaml:"fortify_alchemy"`
	} `yaml:"gamesettings"`
}

// WriteDefaultConfig writes the default configuration to path,
// creating parent directories as needed. Existing files are left
// untouched.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	defaults := Defaults()
	var doc configDoc
	doc.Registry = defaults.Registry
	doc.Format.Indent = defaults.Format.Indent
	doc.Format.Precision = defaults.Format.Precision
	doc.Format.Color = defaults.Format.Color
	doc.GameSettings.AlchemySkill = defaults.GameSettings.AlchemySkill
	doc.GameSettings.IngredientMult = defaults.GameSettings.IngredientMult
	doc.GameSettings.SkillFactor = defaults.GameSettings.SkillFactor
	doc.GameSettings.FortifyAlchemy = defaults.GameSettings.FortifyAlchemy

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
