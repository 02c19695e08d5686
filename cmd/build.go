package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alembic/internal/alchemy"
	"alembic/internal/catalog"
	"alembic/internal/gamedata"
	"alembic/internal/log"
	"alembic/internal/render"
)

var (
	buildStdin bool
	buildName  string
)

var buildCmd = &cobra.Command{
	Use:   "build <ingredient>...",
	Short: "Combine 2-4 ingredients and show the resulting potion",
	Long: `Build resolves each name against the catalog (exact name first, then
the first substring match), derives the effects shared by at least two
of the ingredients, and prints the contributing ingredients followed
by the scaled potion.

With --stdin the ingredient list is read as registry-format blocks
from standard input instead of being resolved by name.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if buildStdin {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.RangeArgs(alchemy.MinMixIngredients, alchemy.MaxMixIngredients)(cmd, args)
	},
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildStdin, "stdin", "i", false,
		"read registry-format ingredient blocks from stdin")
	buildCmd.Flags().StringVar(&buildName, "name", "",
		"name the resulting potion")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	var ingredients []alchemy.Ingredient
	if buildStdin {
		ingredients, err = gamedata.Parse(cmd.InOrStdin())
		if err != nil {
			return err
		}
	} else {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		ingredients, err = resolveIngredients(cat, args)
		if err != nil {
			return err
		}
	}

	potion, err := alchemy.NewPotion(buildName, ingredients, cfg.GameSettings)
	if err != nil {
		return err
	}
	log.Info(log.CatBuild, "potion built",
		"ingredients", len(ingredients), "effects", len(potion.FinalEffects))

	// Contributing ingredients first, with their shared effects
	// highlighted; quiet mode narrows each to just those effects.
	effectNames := make([]string, len(potion.BaseEffects))
	for i, fx := range potion.BaseEffects {
		effectNames[i] = strings.ToLower(fx.Name)
	}
	out := cmd.OutOrStdout()
	r := render.New(format, effectNames...)
	r.Ingredients(out, ingredients, 1)
	fmt.Fprintln(out)
	render.New(format).Potion(out, potion, 1)
	return nil
}

// resolveIngredients maps each argument to a catalog entry via
// best-fit lookup.
func resolveIngredients(cat *catalog.Catalog, names []string) ([]alchemy.Ingredient, error) {
	ingredients := make([]alchemy.Ingredient, 0, len(names))
	for _, name := range names {
		pos := cat.FindBestFit(name, catalog.ScopeIngredient)
		if pos == cat.End() {
			return nil, fmt.Errorf("no ingredient matching %q", name)
		}
		ingredients = append(ingredients, cat.At(pos))
	}
	return ingredients, nil
}
