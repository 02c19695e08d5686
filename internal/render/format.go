// Package render projects alchemy records to a text sink: keywords,
// effects, ingredients, potions, and lists thereof, with search-term
// highlighting and a configurable output format.
package render

import (
	"strings"

	"alembic/internal/alchemy"
	"alembic/internal/catalog"
)

// Format bundles every display flag into a single immutable value
// passed by reference into render calls. Rendering never mutates it.
type Format struct {
	// Quiet suppresses effects that match no active search term.
	Quiet bool
	// Verbose renders each effect's keywords as nested lines.
	Verbose bool
	// Exact requires full string equality instead of containment.
	Exact bool
	// All forces magnitude/duration columns and keyword lines even
	// when the value is zero.
	All bool
	// Export emits the re-parsable registry block format.
	Export bool
	// Reverse iterates collections back to front.
	Reverse bool
	// Color enables per-effect color resolution.
	Color bool
	// CacheLocally memoizes search results for repeated terms.
	CacheLocally bool

	// Indent is the number of spaces per indentation level.
	Indent int
	// Precision is the number of decimals for magnitudes.
	Precision int

	Colors Palette
}

// DefaultFormat returns a format with the standard indent, precision,
// and palette.
func DefaultFormat() Format {
	return Format{
		Verbose:   false,
		Color:     true,
		Indent:    3,
		Precision: 2,
		Colors:    DefaultPalette(),
	}
}

// Match reports whether candidate satisfies term under the current
// mode: equality in exact mode, case-insensitive containment
// otherwise.
func (f Format) Match(candidate, term string) bool {
	candidate = strings.ToLower(candidate)
	term = strings.ToLower(term)
	if f.Exact {
		return candidate == term
	}
	return strings.Contains(candidate, term)
}

// MatchFunc adapts the format's matching mode to the catalog's search
// predicate type.
func (f Format) MatchFunc() catalog.MatchFunc {
	if f.Exact {
		return catalog.Equals
	}
	return catalog.Contains
}

// SplitName scans name case-insensitively for the first occurrence of
// any term, tried in the order given, and returns the
// (prefix, match, suffix) triple using name's original-case
// characters. No match returns (name, "", "").
func (f Format) SplitName(name string, terms []string) (pre, hit, post string) {
	if name == "" {
		return name, "", ""
	}
	lower := strings.ToLower(name)
	for _, term := range terms {
		lt := strings.ToLower(term)
		// Span from the lowered term: lowercasing can change a term's
		// byte length.
		if pos := strings.Index(lower, lt); pos >= 0 {
			end := pos + len(lt)
			return name[:pos], name[pos:end], name[end:]
		}
	}
	return name, "", ""
}

// VisibleEffects applies the quiet filter to an ingredient's effect
// slots. With quiet off every slot is returned; with quiet on only
// effects matching a search term survive, and exact+quiet stops after
// the first qualifying effect.
func (f Format) VisibleEffects(effects [alchemy.EffectSlots]alchemy.Effect, terms []string) []alchemy.Effect {
	visible := make([]alchemy.Effect, 0, len(effects))
	for _, fx := range effects {
		if fx.Name == "" {
			// Unfilled effect slot.
			continue
		}
		if !f.Quiet {
			visible = append(visible, fx)
			continue
		}
		for _, term := range terms {
			if f.Match(fx.Name, term) {
				visible = append(visible, fx)
				break
			}
		}
		if f.Exact && len(visible) > 0 {
			break
		}
	}
	return visible
}
