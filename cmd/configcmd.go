package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"alembic/internal/config"
	"alembic/internal/paths"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the alembic config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Init writes the built-in defaults to the user config location
(~/.config/alembic/config.yaml), or to --config when set. Existing
files are never overwritten.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = paths.UserConfigFile()
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
