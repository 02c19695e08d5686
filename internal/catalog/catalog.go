// Package catalog holds the ordered, duplicate-free ingredient
// collection and its name/effect search operations.
package catalog

import (
	"sort"
	"strings"

	"alembic/internal/alchemy"
	"alembic/internal/log"
)

// Scope selects which fields a search inspects.
type Scope int

const (
	// ScopeBoth matches on ingredient names and effect names.
	ScopeBoth Scope = iota
	// ScopeIngredient matches on ingredient names only.
	ScopeIngredient
	// ScopeEffect matches on effect names only.
	ScopeEffect
)

// LessFunc is the ordering predicate over ingredient names. Two names
// are considered equal when neither is less than the other.
type LessFunc func(a, b string) bool

// MatchFunc decides whether a lowercased candidate name satisfies a
// lowercased search term. The predicate encodes exact-vs-partial
// policy so the scan logic never changes between modes.
type MatchFunc func(candidate, term string) bool

// Contains is the partial-match predicate: true when term occurs
// anywhere within candidate.
func Contains(candidate, term string) bool { return strings.Contains(candidate, term) }

// Equals is the exact-match predicate.
func Equals(candidate, term string) bool { return candidate == term }

// DefaultLess is the default ordering: case-sensitive lexicographic.
func DefaultLess(a, b string) bool { return a < b }

// Catalog is an ordered, duplicate-free ingredient collection.
// It is built once from an unordered list; insertion is idempotent and
// duplicates (by the ordering predicate) are dropped and counted.
type Catalog struct {
	items []alchemy.Ingredient
	less  LessFunc
	dupes int
}

// New builds a catalog from an unordered ingredient list using
// DefaultLess as the ordering predicate.
func New(list []alchemy.Ingredient) *Catalog {
	return NewWithLess(list, DefaultLess)
}

// NewWithLess builds a catalog ordered by the given predicate.
func NewWithLess(list []alchemy.Ingredient, less LessFunc) *Catalog {
	c := &Catalog{less: less}
	for _, ingr := range list {
		c.insert(ingr)
	}
	if c.dupes > 0 {
		log.Debug(log.CatCatalog, "dropped duplicate ingredients", "count", c.dupes)
	}
	return c
}

// insert places ingr at its sorted position. An existing entry with an
// equal key is left untouched and the duplicate counter incremented.
func (c *Catalog) insert(ingr alchemy.Ingredient) {
	pos := sort.Search(len(c.items), func(i int) bool {
		return !c.less(c.items[i].Name, ingr.Name)
	})
	if pos < len(c.items) && !c.less(ingr.Name, c.items[pos].Name) {
		c.dupes++
		return
	}
	c.items = append(c.items, alchemy.Ingredient{})
	copy(c.items[pos+1:], c.items[pos:])
	c.items[pos] = ingr
}

// Len returns the number of ingredients in the catalog.
func (c *Catalog) Len() int { return len(c.items) }

// Empty reports whether the catalog holds no ingredients.
func (c *Catalog) Empty() bool { return len(c.items) == 0 }

// Dupes returns how many duplicates were dropped at construction.
func (c *Catalog) Dupes() int { return c.dupes }

// End is the sentinel position meaning "no match" for Get and
// FindBestFit.
func (c *Catalog) End() int { return len(c.items) }

// At returns the ingredient at position i. i must be < Len().
func (c *Catalog) At(i int) alchemy.Ingredient { return c.items[i] }

// All returns the ingredients in catalog order. The returned slice is
// shared; callers must not mutate it.
func (c *Catalog) All() []alchemy.Ingredient { return c.items }

// Get scans forward from position from and returns the position of the
// first match, or End() if none. With onlyEffects false the ingredient
// name must equal name exactly (case-sensitive); with onlyEffects true
// any effect's lowercased name must satisfy match against the
// lowercased name. Advancing from past each hit enumerates all
// matches.
func (c *Catalog) Get(name string, from int, onlyEffects bool, match MatchFunc) int {
	term := strings.ToLower(name)
	for i := from; i < len(c.items); i++ {
		if onlyEffects {
			if c.items[i].HasEffect(term, match) {
				return i
			}
		} else if c.items[i].Name == name {
			return i
		}
	}
	return c.End()
}

// Find returns every ingredient satisfying match under the given
// scope, in catalog order. Not-found is an empty result, never an
// error.
func (c *Catalog) Find(name string, match MatchFunc, scope Scope) []alchemy.Ingredient {
	term := strings.ToLower(name)
	var out []alchemy.Ingredient
	for _, ingr := range c.items {
		byName := match(ingr.LowerName(), term)
		switch scope {
		case ScopeIngredient:
			if byName {
				out = append(out, ingr)
			}
		case ScopeEffect:
			if ingr.HasEffect(term, match) {
				out = append(out, ingr)
			}
		case ScopeBoth:
			if byName || ingr.HasEffect(term, match) {
				out = append(out, ingr)
			}
		}
	}
	return out
}

// FindBestFit returns the position of the single best match for name,
// or End() if nothing qualifies. An exact lowercased name match wins
// immediately; failing that, the first substring candidate in catalog
// order is returned. The fallback deliberately does not rank
// candidates by closeness.
func (c *Catalog) FindBestFit(name string, scope Scope) int {
	term := strings.ToLower(name)
	candidate := c.End()

	record := func(i int) {
		if candidate == c.End() {
			candidate = i
		}
	}

	for i, ingr := range c.items {
		if scope != ScopeEffect {
			lc := ingr.LowerName()
			if lc == term {
				return i
			}
			if strings.Contains(lc, term) {
				record(i)
				continue
			}
		}
		if scope != ScopeIngredient {
			// Scan every slot: a later slot's exact match still wins
			// over any recorded substring candidate.
			for _, fx := range ingr.Effects {
				lc := fx.LowerName()
				if lc == term {
					return i
				}
				if strings.Contains(lc, term) {
					record(i)
				}
			}
		}
	}
	return candidate
}
