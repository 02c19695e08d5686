package alchemy

import "strings"

// EffectSlots is the number of effect slots on every ingredient.
// Ingredients never carry more than four effects; this is a hard domain
// invariant of the imported game data.
const EffectSlots = 4

// Ingredient is a named record with exactly four effect slots.
// Ordering and equality for catalog storage are by name.
type Ingredient struct {
	Name    string
	Effects [EffectSlots]Effect
}

// LowerName returns the ingredient name lowercased for
// case-insensitive matching.
func (i Ingredient) LowerName() string { return strings.ToLower(i.Name) }

// HasEffect reports whether any effect slot's lowercased name satisfies
// match against term. The term must already be lowercased.
func (i Ingredient) HasEffect(term string, match func(candidate, term string) bool) bool {
	for _, fx := range i.Effects {
		if match(fx.LowerName(), term) {
			return true
		}
	}
	return false
}
