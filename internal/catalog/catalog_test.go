package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"alembic/internal/alchemy"
)

// === Helper Functions ===

func fx(name string) alchemy.Effect {
	return alchemy.Effect{Name: name, Magnitude: 1}
}

func ingr(name string, effects ...alchemy.Effect) alchemy.Ingredient {
	i := alchemy.Ingredient{Name: name}
	copy(i.Effects[:], effects)
	return i
}

// testList is a small fixture catalog input, deliberately unsorted.
func testList() []alchemy.Ingredient {
	return []alchemy.Ingredient{
		ingr("Wheat", fx("Restore Health"), fx("Fortify Health")),
		ingr("Deathbell", fx("Damage Health"), fx("Slow")),
		ingr("Blue Mountain Flower", fx("Restore Health"), fx("Fortify Conjuration")),
		ingr("Giant's Toe", fx("Damage Stamina"), fx("Fortify Health")),
	}
}

// === Construction ===

func TestNew_SortsByName(t *testing.T) {
	cat := New(testList())

	require.Equal(t, 4, cat.Len())
	require.Equal(t, "Blue Mountain Flower", cat.At(0).Name)
	require.Equal(t, "Deathbell", cat.At(1).Name)
	require.Equal(t, "Giant's Toe", cat.At(2).Name)
	require.Equal(t, "Wheat", cat.At(3).Name)
	require.Zero(t, cat.Dupes())
}

func TestNew_DropsAndCountsDuplicates(t *testing.T) {
	list := append(testList(),
		ingr("Wheat", fx("Something Else")),
		ingr("Deathbell"),
	)

	cat := New(list)

	require.Equal(t, 4, cat.Len())
	require.Equal(t, 2, cat.Dupes())
	// First insertion wins; the duplicate never overwrites.
	pos := cat.Get("Wheat", 0, false, nil)
	require.Equal(t, "Restore Health", cat.At(pos).Effects[0].Name)
}

func TestNew_CustomLess(t *testing.T) {
	cat := NewWithLess(testList(), func(a, b string) bool { return a > b })

	require.Equal(t, "Wheat", cat.At(0).Name)
	require.Equal(t, "Blue Mountain Flower", cat.At(3).Name)
}

func TestNew_OrderInvariantUnderPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[A-Za-z ]{1,12}`), 1, 20,
			func(s string) string { return s },
		).Draw(t, "names")
		dupes := rapid.IntRange(0, 5).Draw(t, "dupes")
		seed := rapid.Int64().Draw(t, "seed")

		list := make([]alchemy.Ingredient, 0, len(names)+dupes)
		for _, name := range names {
			list = append(list, ingr(name))
		}
		for i := 0; i < dupes; i++ {
			list = append(list, ingr(names[i%len(names)]))
		}

		shuffled := append([]alchemy.Ingredient(nil), list...)
		rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		a, b := New(list), New(shuffled)
		require.Equal(t, a.Len(), b.Len())
		require.Equal(t, a.Dupes(), b.Dupes())
		require.Equal(t, dupes, a.Dupes())
		for i := 0; i < a.Len(); i++ {
			require.Equal(t, a.At(i).Name, b.At(i).Name)
		}
		for i := 1; i < a.Len(); i++ {
			require.True(t, a.At(i-1).Name < a.At(i).Name)
		}
	})
}

// === Get ===

func TestGet_ExactNameMatch(t *testing.T) {
	cat := New(testList())

	pos := cat.Get("Deathbell", 0, false, nil)
	require.Equal(t, "Deathbell", cat.At(pos).Name)

	// Case-sensitive: no match for lowercased name.
	require.Equal(t, cat.End(), cat.Get("deathbell", 0, false, nil))
}

func TestGet_EnumeratesEffectMatches(t *testing.T) {
	cat := New(testList())

	var hits []string
	for pos := cat.Get("restore health", 0, true, Contains); pos != cat.End(); pos = cat.Get("restore health", pos+1, true, Contains) {
		hits = append(hits, cat.At(pos).Name)
	}
	require.Equal(t, []string{"Blue Mountain Flower", "Wheat"}, hits)
}

func TestGet_NotFoundIsEndSentinel(t *testing.T) {
	cat := New(testList())
	require.Equal(t, cat.End(), cat.Get("Nirnroot", 0, false, nil))
}

// === Find ===

func TestFind_ScopeIngredient(t *testing.T) {
	cat := New(testList())

	results := cat.Find("flower", Contains, ScopeIngredient)
	require.Len(t, results, 1)
	require.Equal(t, "Blue Mountain Flower", results[0].Name)
}

func TestFind_ScopeEffect(t *testing.T) {
	cat := New(testList())

	results := cat.Find("fortify", Contains, ScopeEffect)
	require.Len(t, results, 3)
	// Catalog order.
	require.Equal(t, "Blue Mountain Flower", results[0].Name)
	require.Equal(t, "Giant's Toe", results[1].Name)
	require.Equal(t, "Wheat", results[2].Name)
}

func TestFind_ScopeBoth(t *testing.T) {
	cat := New(testList())

	// "bell" hits Deathbell by name; "slow" hits it by effect only.
	require.Len(t, cat.Find("bell", Contains, ScopeBoth), 1)
	require.Len(t, cat.Find("slow", Contains, ScopeBoth), 1)
}

func TestFind_ExactPredicate(t *testing.T) {
	cat := New(testList())

	require.Empty(t, cat.Find("restore", Equals, ScopeEffect))
	require.Len(t, cat.Find("restore health", Equals, ScopeEffect), 2)
}

func TestFind_NoMatchIsEmpty(t *testing.T) {
	cat := New(testList())
	require.Empty(t, cat.Find("nirnroot", Contains, ScopeBoth))
}

// === FindBestFit ===

func TestFindBestFit_ExactNameWins(t *testing.T) {
	list := append(testList(), ingr("Wheat Chaff"))
	cat := New(list)

	pos := cat.FindBestFit("wheat", ScopeIngredient)
	require.Equal(t, "Wheat", cat.At(pos).Name)
}

func TestFindBestFit_FallsBackToFirstCandidate(t *testing.T) {
	// Documented quirk: without an exact match the first substring
	// candidate in catalog order wins, even when a later entry would
	// be a closer fit.
	cat := New([]alchemy.Ingredient{
		ingr("Charred Skeever Hide"),
		ingr("Skeever Tail"),
	})

	pos := cat.FindBestFit("skeever", ScopeIngredient)
	require.Equal(t, "Charred Skeever Hide", cat.At(pos).Name)
}

func TestFindBestFit_EffectScope(t *testing.T) {
	cat := New(testList())

	pos := cat.FindBestFit("slow", ScopeEffect)
	require.Equal(t, "Deathbell", cat.At(pos).Name)

	// Ingredient names are invisible in effect scope.
	require.Equal(t, cat.End(), cat.FindBestFit("giant", ScopeEffect))
}

func TestFindBestFit_ExactEffectBeatsEarlierSubstring(t *testing.T) {
	// The exact check covers every effect slot, so an exact match in a
	// later slot of a later-sorted ingredient outranks a substring
	// candidate recorded earlier.
	cat := New([]alchemy.Ingredient{
		ingr("Aaa Root", fx("Fortify Health Regen")),
		ingr("Bbb Moss", fx("Fortify Health Regen"), fx("Fortify Health")),
	})

	pos := cat.FindBestFit("fortify health", ScopeEffect)
	require.Equal(t, "Bbb Moss", cat.At(pos).Name)
}

func TestFindBestFit_NoMatchIsEndSentinel(t *testing.T) {
	cat := New(testList())
	require.Equal(t, cat.End(), cat.FindBestFit("nirnroot", ScopeBoth))
}
