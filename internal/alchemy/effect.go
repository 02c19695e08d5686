package alchemy

import "strings"

// Effect is a single magical effect an ingredient can carry.
// Two effects are the same effect for merge and search purposes iff
// their names are equal; magnitudes and durations may differ per
// ingredient. A magnitude or duration of 0 means "not applicable" and
// is hidden by the renderer unless the all-flag is set.
type Effect struct {
	Name      string
	Magnitude float64
	Duration  uint
	Keywords  []Keyword
}

// HasKeyword reports whether the effect carries a keyword with the
// given name.
func (e Effect) HasKeyword(name string) bool {
	for _, kw := range e.Keywords {
		if kw.Name == name {
			return true
		}
	}
	return false
}

// IsNegative reports whether the effect carries the harmful marker
// keyword.
func (e Effect) IsNegative() bool { return e.HasKeyword(KeywordHarmful) }

// IsPositive reports whether the effect carries the beneficial marker
// keyword.
func (e Effect) IsPositive() bool { return e.HasKeyword(KeywordBeneficial) }

// LowerName returns the effect name lowercased for case-insensitive
// matching.
func (e Effect) LowerName() string { return strings.ToLower(e.Name) }
