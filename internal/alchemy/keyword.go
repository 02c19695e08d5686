// Package alchemy defines the core record types: keywords, effects,
// ingredients, and potions, plus the effect-merge rules used when
// combining ingredients.
package alchemy

// Well-known keyword names carried by imported game data. The color
// resolver and potion classifier treat these as markers; any other
// keyword is informational only.
const (
	KeywordHarmful        = "MagicAlchHarmful"
	KeywordBeneficial     = "MagicAlchBeneficial"
	KeywordMagicInfluence = "MagicInfluence"
	KeywordDurationBased  = "MagicAlchDurationBased"
)

// Keyword tags an effect with a category such as harmful or
// magic-influence. Keywords are immutable once created and are owned by
// the effect that lists them.
type Keyword struct {
	Name string
}
