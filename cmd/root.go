// Package cmd wires the alembic command tree: list, search, build,
// export, and validate, all operating on one loaded ingredient
// catalog.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alembic/internal/catalog"
	"alembic/internal/config"
	"alembic/internal/gamedata"
	"alembic/internal/log"
	"alembic/internal/paths"
	"alembic/internal/render"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	flagQuiet   bool
	flagVerbose bool
	flagExact   bool
	flagAll     bool
	flagReverse bool
	flagNoColor bool
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "alembic",
	Short: "Search crafting ingredients and preview potion builds",
	Long: `Alembic loads an ingredient registry and answers questions about it:
which ingredients exist, which carry a given effect, and what potion a
2-4 ingredient combination would produce.`,
	Version:           version,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/alembic/config.yaml)")
	rootCmd.PersistentFlags().StringP("registry", "r", "",
		"path to the ingredient registry file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"only show effects matching the search terms")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"show effect keywords")
	rootCmd.PersistentFlags().BoolVarP(&flagExact, "exact", "e", false,
		"require exact matches instead of substring matches")
	rootCmd.PersistentFlags().BoolVarP(&flagAll, "all", "a", false,
		"show magnitude, duration, and keywords even when zero or hidden")
	rootCmd.PersistentFlags().BoolVarP(&flagReverse, "reverse", "R", false,
		"print results in reverse order")
	rootCmd.PersistentFlags().Bool("no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().Uint("precision", 0,
		"decimal places for magnitudes (overrides config)")
	rootCmd.PersistentFlags().Uint("indent", 0,
		"spaces per indentation level (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"write a debug log to alembic.log")

	// Bind flags to viper
	_ = viper.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("registry", defaults.Registry)
	viper.SetDefault("format.indent", defaults.Format.Indent)
	viper.SetDefault("format.precision", defaults.Format.Precision)
	viper.SetDefault("format.color", defaults.Format.Color)
	viper.SetDefault("gamesettings.alchemy_skill", defaults.GameSettings.AlchemySkill)
	viper.SetDefault("gamesettings.ingredient_mult", defaults.GameSettings.IngredientMult)
	viper.SetDefault("gamesettings.skill_factor", defaults.GameSettings.SkillFactor)
	viper.SetDefault("gamesettings.fortify_alchemy", defaults.GameSettings.FortifyAlchemy)

	viper.SetConfigFile(paths.ConfigFile(cfgFile))

	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.ErrorErr(log.CatConfig, "reading config", err)
		}
		// Missing config is fine; defaults apply.
	}

	_ = viper.Unmarshal(&cfg)
	cfg.Registry = paths.ResolveRegistry(cfg.Registry, viper.ConfigFileUsed())
}

// setup enables debug logging when requested. The logger stays dark
// otherwise.
func setup(cmd *cobra.Command, args []string) error {
	if flagDebug || os.Getenv("ALEMBIC_DEBUG") != "" {
		if _, err := log.Init("alembic.log"); err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
	}
	return nil
}

// loadCatalog parses the configured registry file and builds the
// ordered, deduplicated catalog from it.
func loadCatalog() (*catalog.Catalog, error) {
	list, err := gamedata.ParseFile(cfg.Registry)
	if err != nil {
		return nil, err
	}
	cat := catalog.New(list)
	log.Info(log.CatCatalog, "catalog loaded",
		"ingredients", cat.Len(), "duplicates", cat.Dupes())
	return cat, nil
}

// outputFormat assembles the immutable render configuration from the
// config file and command-line flags.
func outputFormat(cmd *cobra.Command) (render.Format, error) {
	palette, err := render.NewPalette(cfg.Colors)
	if err != nil {
		return render.Format{}, fmt.Errorf("invalid color config: %w", err)
	}

	f := render.Format{
		Quiet:     flagQuiet,
		Verbose:   flagVerbose,
		Exact:     flagExact,
		All:       flagAll,
		Reverse:   flagReverse,
		Color:     cfg.Format.Color,
		Indent:    cfg.Format.Indent,
		Precision: cfg.Format.Precision,
		Colors:    palette,
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		f.Color = false
	}
	if precision, _ := cmd.Flags().GetUint("precision"); precision > 0 {
		f.Precision = int(precision)
	}
	if cmd.Flags().Changed("indent") {
		indent, _ := cmd.Flags().GetUint("indent")
		f.Indent = int(indent)
	}
	return f, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
