// Package settings holds the game-settings knobs that scale potion
// magnitudes. It is the concrete implementation of the scaler hook the
// alchemy package consumes.
package settings

// GameSettings carries the character and game modifiers that determine
// how strong a brewed potion ends up relative to its base effects.
type GameSettings struct {
	// AlchemySkill is the character's alchemy skill level (0-100).
	AlchemySkill float64 `mapstructure:"alchemy_skill"`

	// IngredientMult is the flat multiplier applied to every base
	// magnitude before skill scaling.
	IngredientMult float64 `mapstructure:"ingredient_mult"`

	// SkillFactor controls how much the skill level contributes: at
	// skill 100 the magnitude is multiplied by SkillFactor.
	SkillFactor float64 `mapstructure:"skill_factor"`

	// FortifyAlchemy is the combined fortify-alchemy percentage from
	// worn gear.
	FortifyAlchemy float64 `mapstructure:"fortify_alchemy"`
}

// Defaults returns the vanilla game values.
func Defaults() GameSettings {
	return GameSettings{
		AlchemySkill:   15,
		IngredientMult: 4,
		SkillFactor:    1.5,
		FortifyAlchemy: 0,
	}
}

// CalculateMagnitude converts a base effect magnitude into the final
// potion magnitude. Duration is never scaled here.
func (gs GameSettings) CalculateMagnitude(base float64) float64 {
	skill := 1 + (gs.SkillFactor-1)*gs.AlchemySkill/100
	fortify := 1 + gs.FortifyAlchemy/100
	return base * gs.IngredientMult * skill * fortify
}
