package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testRegistry = `Deathbell
{
	Damage Health
	{
		magnitude = 1.5
		duration = 10
		MagicAlchHarmful
	}
	Ravage Stamina
	{
		magnitude = 1
		duration = 10
	}
	Slow
	{
		magnitude = 0
		duration = 5
	}
	Weakness to Poison
	{
		magnitude = 0.25
		duration = 30
	}
}
River Betty
{
	Damage Health
	{
		magnitude = 2.5
		duration = 10
	}
	Fortify Alteration
	{
		magnitude = 4
		duration = 60
	}
	Slow
	{
		magnitude = 0
		duration = 5
	}
	Fortify Carry Weight
	{
		magnitude = 4
		duration = 300
	}
}
`

// run executes the root command with a temp registry and returns the
// captured output.
func run(t *testing.T, args ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ingredients.txt")
	require.NoError(t, os.WriteFile(path, []byte(testRegistry), 0644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--registry", path, "--no-color"}, args...))

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestValidate_ReportsCounts(t *testing.T) {
	out := run(t, "validate")
	require.Contains(t, out, "2 ingredients (0 duplicates dropped)")
}

func TestList_PrintsCatalogInOrder(t *testing.T) {
	out := run(t, "list")

	require.Contains(t, out, "Deathbell")
	require.Contains(t, out, "River Betty")
	require.Less(t, strings.Index(out, "Deathbell"), strings.Index(out, "River Betty"))
	require.Contains(t, out, "Damage Health")
}

func TestSearch_HighlightsMatches(t *testing.T) {
	out := run(t, "search", "slow")

	require.Contains(t, out, "Deathbell")
	require.Contains(t, out, "River Betty")
}

func TestSearch_NoResults(t *testing.T) {
	out := run(t, "search", "nirnroot")
	require.Contains(t, out, `No results for "nirnroot"`)
}

func TestBuild_SharedEffectPotion(t *testing.T) {
	out := run(t, "build", "deathbell", "river betty")

	// Damage Health is shared (max base 2.5); Slow is shared too.
	// Defaults scale magnitudes by 4.3: 2.5 -> 10.75.
	require.Contains(t, out, "Potion")
	require.Contains(t, out, "Damage Health")
	require.Contains(t, out, "10.75")
}

func TestBuild_UnknownIngredient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingredients.txt")
	require.NoError(t, os.WriteFile(path, []byte(testRegistry), 0644))

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--registry", path, "--no-color", "build", "deathbell", "nirnroot"})

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), `no ingredient matching "nirnroot"`)
}

func TestList_IndentFlagOverridesConfig(t *testing.T) {
	out := run(t, "--indent", "1", "list")

	require.True(t, strings.HasPrefix(out, " Deathbell\n"))
	require.Contains(t, out, "\n  Damage Health")

	flag := rootCmd.PersistentFlags().Lookup("indent")
	flag.Changed = false
	require.NoError(t, flag.Value.Set("0"))
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, buf.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "registry: ingredients.txt")

	cfgFile = ""
}

func TestExport_RoundTripFormat(t *testing.T) {
	out := run(t, "export")

	require.Contains(t, out, "Deathbell\n{\n")
	require.Contains(t, out, "\t\tmagnitude = 1.5\n")
	require.Contains(t, out, "\t\tMagicAlchHarmful\n")
}
