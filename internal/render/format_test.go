package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"alembic/internal/alchemy"
)

func fx(name string, magnitude float64, duration uint) alchemy.Effect {
	return alchemy.Effect{Name: name, Magnitude: magnitude, Duration: duration}
}

func slots(effects ...alchemy.Effect) [alchemy.EffectSlots]alchemy.Effect {
	var arr [alchemy.EffectSlots]alchemy.Effect
	copy(arr[:], effects)
	return arr
}

// === Match ===

func TestMatch_PartialMode(t *testing.T) {
	f := Format{}

	require.True(t, f.Match("giant's toe", "toe"))
	require.True(t, f.Match("toe", "toe"))
	require.True(t, f.Match("Giant's Toe", "TOE"))
	require.False(t, f.Match("wheat", "toe"))
}

func TestMatch_ExactMode(t *testing.T) {
	f := Format{Exact: true}

	require.False(t, f.Match("giant's toe", "toe"))
	require.True(t, f.Match("toe", "toe"))
	require.True(t, f.Match("Toe", "toe"))
}

// === SplitName ===

func TestSplitName_CaseInsensitiveOriginalCaseOutput(t *testing.T) {
	f := Format{}

	pre, hit, post := f.SplitName("Frost Salts", []string{"salt"})
	require.Equal(t, "Frost ", pre)
	require.Equal(t, "Salt", hit)
	require.Equal(t, "s", post)
}

func TestSplitName_TermsTriedInOrder(t *testing.T) {
	f := Format{}

	pre, hit, post := f.SplitName("Frost Salts", []string{"missing", "frost"})
	require.Equal(t, "", pre)
	require.Equal(t, "Frost", hit)
	require.Equal(t, " Salts", post)
}

func TestSplitName_TermLowercaseChangesByteLength(t *testing.T) {
	f := Format{}

	// The Kelvin sign (3 bytes) lowercases to plain "k" (1 byte); the
	// match span must use the lowered term's length.
	pre, hit, post := f.SplitName("Koi Scale", []string{"K"})
	require.Equal(t, "", pre)
	require.Equal(t, "K", hit)
	require.Equal(t, "oi Scale", post)
}

func TestSplitName_NoMatch(t *testing.T) {
	f := Format{}

	for _, terms := range [][]string{nil, {}, {"xyz"}} {
		pre, hit, post := f.SplitName("Frost Salts", terms)
		require.Equal(t, "Frost Salts", pre)
		require.Empty(t, hit)
		require.Empty(t, post)
	}
}

// === VisibleEffects ===

func TestVisibleEffects_AllSlotsWhenNotQuiet(t *testing.T) {
	f := Format{}
	effects := slots(fx("Restore Health", 5, 0), fx("Damage Stamina", 5, 0))

	visible := f.VisibleEffects(effects, []string{"restore"})
	// Quiet off: every filled slot comes through regardless of terms.
	require.Len(t, visible, 2)
}

func TestVisibleEffects_QuietFiltersNonMatching(t *testing.T) {
	f := Format{Quiet: true}
	effects := slots(
		fx("Restore Health", 5, 0),
		fx("Damage Stamina", 5, 0),
		fx("Restore Magicka", 5, 0),
	)

	visible := f.VisibleEffects(effects, []string{"restore"})
	require.Len(t, visible, 2)
	require.Equal(t, "Restore Health", visible[0].Name)
	require.Equal(t, "Restore Magicka", visible[1].Name)
}

func TestVisibleEffects_ExactQuietStopsAfterFirstHit(t *testing.T) {
	f := Format{Quiet: true, Exact: true}
	effects := slots(
		fx("Restore Health", 5, 0),
		fx("Restore Health", 8, 0),
	)

	visible := f.VisibleEffects(effects, []string{"restore health"})
	require.Len(t, visible, 1)
	require.Equal(t, 5.0, visible[0].Magnitude)
}
