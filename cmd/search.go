package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alembic/internal/alchemy"
	"alembic/internal/cache"
	"alembic/internal/catalog"
	"alembic/internal/log"
	"alembic/internal/render"
)

var (
	searchExport      bool
	searchCached      bool
	searchEffectsOnly bool
	searchNamesOnly   bool
)

var searchCmd = &cobra.Command{
	Use:   "search <term>...",
	Short: "Search the catalog by ingredient or effect name",
	Long: `Search prints every ingredient whose name or effect names match the
given terms. Each term is searched separately; matches are highlighted
in the output. Partial matches are included unless --exact is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchExport, "export", "E", false,
		"emit matches in the re-parsable registry format")
	searchCmd.Flags().BoolVarP(&searchCached, "cached", "S", false,
		"memoize per-term results for repeated terms")
	searchCmd.Flags().Bool("effects", false,
		"match effect names only")
	searchCmd.Flags().Bool("ingredients", false,
		"match ingredient names only")
	rootCmd.AddCommand(searchCmd)
}

func searchScope(cmd *cobra.Command) catalog.Scope {
	effects, _ := cmd.Flags().GetBool("effects")
	ingredients, _ := cmd.Flags().GetBool("ingredients")
	switch {
	case effects && !ingredients:
		return catalog.ScopeEffect
	case ingredients && !effects:
		return catalog.ScopeIngredient
	default:
		return catalog.ScopeBoth
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	format.Export = searchExport
	format.CacheLocally = searchCached
	scope := searchScope(cmd)

	var memo *cache.Manager[[]alchemy.Ingredient]
	if format.CacheLocally {
		memo = cache.NewManager[[]alchemy.Ingredient]("search", cache.DefaultExpiration, cache.DefaultCleanupInterval)
	}

	out := cmd.OutOrStdout()
	for _, term := range args {
		results := findCached(cat, memo, term, format, scope)
		if len(results) == 0 {
			fmt.Fprintf(out, "No results for %q\n", term)
			continue
		}
		r := render.New(format, args...)
		r.Ingredients(out, results, 1)
	}
	return nil
}

// findCached runs one catalog search, consulting the memo first when
// cached mode is on.
func findCached(cat *catalog.Catalog, memo *cache.Manager[[]alchemy.Ingredient], term string, format render.Format, scope catalog.Scope) []alchemy.Ingredient {
	key := fmt.Sprintf("%d:%t:%s", scope, format.Exact, strings.ToLower(term))
	if memo != nil {
		if hit, ok := memo.Get(key); ok {
			return hit
		}
	}
	results := cat.Find(term, format.MatchFunc(), scope)
	log.Debug(log.CatCatalog, "search", "term", term, "results", len(results))
	if memo != nil {
		memo.Set(key, results)
	}
	return results
}
