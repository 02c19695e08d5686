package alchemy

import "fmt"

// Bounds on how many ingredients can be combined into one potion.
const (
	MinMixIngredients = 2
	MaxMixIngredients = 4
)

// DefaultPotionName labels potions built without an explicit name.
const DefaultPotionName = "Potion"

// MagnitudeScaler converts a base effect magnitude into the final
// magnitude a potion would have, applying skill and perk modifiers.
// The settings package provides the concrete implementation.
type MagnitudeScaler interface {
	CalculateMagnitude(base float64) float64
}

// Potion is the result of combining 2-4 ingredients: the shared effects
// before scaling, the same effects after magnitude scaling, and the
// names of the contributing ingredients. Immutable once built.
type Potion struct {
	Name         string
	BaseEffects  []Effect
	FinalEffects []Effect
	Ingredients  []string
}

// CommonEffects reduces the effects of the given ingredients to those
// appearing on at least two of them. Each shared effect carries the
// maximum magnitude and maximum duration observed across all sightings.
// Output order is first-confirmation order, not alphabetical.
//
// Fewer than MinMixIngredients or more than MaxMixIngredients is a
// contract violation and returns an error.
func CommonEffects(ingredients []Ingredient) ([]Effect, error) {
	if n := len(ingredients); n < MinMixIngredients {
		return nil, fmt.Errorf("not enough ingredients: got %d, need at least %d", n, MinMixIngredients)
	} else if n > MaxMixIngredients {
		return nil, fmt.Errorf("too many ingredients: got %d, max %d", n, MaxMixIngredients)
	}

	indexOf := func(list []Effect, name string) int {
		for i := range list {
			if list[i].Name == name {
				return i
			}
		}
		return -1
	}

	var seen, common []Effect
	for _, ingr := range ingredients {
		for _, fx := range ingr.Effects {
			if fx.Name == "" {
				// Unfilled effect slot.
				continue
			}
			if i := indexOf(common, fx.Name); i >= 0 {
				// Already confirmed: keep the running max per field.
				if fx.Magnitude > common[i].Magnitude {
					common[i].Magnitude = fx.Magnitude
				}
				if fx.Duration > common[i].Duration {
					common[i].Duration = fx.Duration
				}
				continue
			}
			if i := indexOf(seen, fx.Name); i >= 0 {
				// Second sighting: promote to common with the max of
				// both sightings' magnitude and duration.
				promoted := seen[i]
				if fx.Magnitude > promoted.Magnitude {
					promoted.Magnitude = fx.Magnitude
					promoted.Keywords = fx.Keywords
				}
				if fx.Duration > promoted.Duration {
					promoted.Duration = fx.Duration
				}
				common = append(common, promoted)
				continue
			}
			seen = append(seen, fx)
		}
	}
	return common, nil
}

// Scale produces the final effect list from base effects: magnitudes
// pass through the scaler, names and durations are untouched.
func Scale(base []Effect, scaler MagnitudeScaler) []Effect {
	final := make([]Effect, len(base))
	for i, fx := range base {
		final[i] = fx
		final[i].Magnitude = scaler.CalculateMagnitude(fx.Magnitude)
	}
	return final
}

// NewPotion combines 2-4 ingredients into a potion. An empty name
// falls back to DefaultPotionName.
func NewPotion(name string, ingredients []Ingredient, scaler MagnitudeScaler) (Potion, error) {
	if name == "" {
		name = DefaultPotionName
	}
	base, err := CommonEffects(ingredients)
	if err != nil {
		return Potion{}, fmt.Errorf("building potion %q: %w", name, err)
	}
	names := make([]string, len(ingredients))
	for i, ingr := range ingredients {
		names[i] = ingr.Name
	}
	return Potion{
		Name:         name,
		BaseEffects:  base,
		FinalEffects: Scale(base, scaler),
		Ingredients:  names,
	}, nil
}
